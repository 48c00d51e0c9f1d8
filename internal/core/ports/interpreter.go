package ports

import (
	"context"
	"io"

	"go.rpack.dev/rpack/internal/core/domain"
)

//go:generate mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks

// Interpreter runs programs in the project's interpreter.
type Interpreter interface {
	// Run executes a program and returns the result it reported through
	// the result file. Combined stdout and stderr of the interpreter is
	// streamed to out. A result with OK set to false is not an error;
	// callers map the result kind to their own failure modes.
	Run(ctx context.Context, env domain.Environment, program domain.Program, out io.Writer) (*domain.InterpreterResult, error)
}
