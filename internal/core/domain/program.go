package domain

import (
	"encoding/json"
	"errors"

	"go.trai.ch/zerr"
)

// Result kinds reported by interpreter programs through the result file.
const (
	// ResultKindError marks a generic program failure.
	ResultKindError = "error"

	// ResultKindNotInitialized marks a program that refused to run because
	// the project has no lockfile yet.
	ResultKindNotInitialized = "not_initialized"
)

// Program is a self-contained interpreter program together with the name
// it reports progress under.
type Program struct {
	// Name identifies the program in logs and result metadata.
	Name string

	// Source is the complete program text handed to the interpreter.
	Source string
}

// InterpreterResult is the structured outcome a program writes to the
// result file before exiting.
type InterpreterResult struct {
	OK      bool            `json:"ok"`
	Kind    string          `json:"kind,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	// Output holds the tail of the combined interpreter output. The runner
	// fills it in after the process exits; programs never write it.
	Output string `json:"-"`
}

// FailureError maps a failed result to a typed error carrying the verbatim
// message the program reported. A result of kind "not_initialized" overrides
// the caller's sentinel with ErrProjectNotInitialized.
func (r *InterpreterResult) FailureError(sentinel error) error {
	if r.Kind == ResultKindNotInitialized {
		sentinel = ErrProjectNotInitialized
	}
	msg := r.Message
	if msg == "" {
		msg = "the interpreter reported a failure"
	}
	var detail error = zerr.New(msg)
	if r.Output != "" {
		detail = zerr.With(detail, "output", r.Output)
	}
	return errors.Join(sentinel, detail)
}

