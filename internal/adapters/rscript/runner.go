// Package rscript runs programs in a non-interactive R interpreter process.
package rscript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"go.rpack.dev/rpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// resultPathEnv names the file a program writes its result to.
const resultPathEnv = "RPACK_RESULT"

// tailLimit bounds how much trailing interpreter output is kept for error
// reporting.
const tailLimit = 8 * 1024

// Runner implements ports.Interpreter using os/exec.
type Runner struct{}

// NewRunner creates a new interpreter runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run writes the program to a temporary file, executes it with the
// configured interpreter and reads back the result file. Combined stdout and
// stderr is streamed to out.
func (r *Runner) Run(ctx context.Context, env domain.Environment, program domain.Program, out io.Writer) (*domain.InterpreterResult, error) {
	scriptPath, cleanupScript, err := writeProgram(program)
	if err != nil {
		return nil, errors.Join(domain.ErrScriptWriteFailed,
			zerr.With(zerr.Wrap(err, "write program file"), "program", program.Name))
	}
	defer cleanupScript()

	resultPath, cleanupResult, err := createResultFile()
	if err != nil {
		return nil, errors.Join(domain.ErrScriptWriteFailed,
			zerr.With(zerr.Wrap(err, "create result file"), "program", program.Name))
	}
	defer cleanupResult()

	if out == nil {
		out = io.Discard
	}
	tail := &tailBuffer{max: tailLimit}
	// Stdout and Stderr get the identical writer value, so os/exec serializes
	// writes and no locking is needed here.
	combined := io.MultiWriter(out, tail)

	//nolint:gosec // the interpreter command comes from the resolved environment
	cmd := exec.CommandContext(ctx, env.Rscript, "--vanilla", scriptPath)
	cmd.Dir = env.Root
	cmd.Env = append(os.Environ(), resultPathEnv+"="+resultPath)
	cmd.Stdout = combined
	cmd.Stderr = combined

	runErr := cmd.Run()

	// A program that fails on purpose exits non-zero after writing its
	// result, so a parseable result always wins over the exit status.
	result, readErr := readResult(resultPath)
	if result != nil {
		result.Output = tail.String()
		return result, nil
	}

	if runErr != nil {
		if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrInterpreterNotFound,
				zerr.With(zerr.Wrap(runErr, "interpreter not found"), "command", env.Rscript))
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, errors.Join(domain.ErrInterpreterFailed,
			zerr.With(zerr.With(zerr.With(zerr.Wrap(runErr, "interpreter exited abnormally"),
				"program", program.Name),
				"exit_code", exitCode),
				"output", tail.String()))
	}

	return nil, errors.Join(domain.ErrResultParseFailed,
		zerr.With(zerr.Wrap(readErr, "read result file"), "program", program.Name))
}

func writeProgram(program domain.Program) (string, func(), error) {
	f, err := os.CreateTemp("", "rpack-*.R")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.WriteString(prelude + "\n" + program.Source); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

func createResultFile() (string, func(), error) {
	f, err := os.CreateTemp("", "rpack-result-*.json")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	return path, func() { _ = os.Remove(path) }, nil
}

func readResult(path string) (*domain.InterpreterResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, zerr.New("result file is empty")
	}
	var result domain.InterpreterResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, zerr.Wrap(err, "decode result file")
	}
	return &result, nil
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	buf []byte
	max int
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	if len(b.buf) > b.max {
		b.buf = b.buf[len(b.buf)-b.max:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	return string(b.buf)
}
