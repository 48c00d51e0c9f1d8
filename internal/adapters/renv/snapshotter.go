// Package renv drives the snapshot subsystem that maintains the project
// lockfile and library.
package renv

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"go.rpack.dev/rpack/internal/core/domain"
	"go.rpack.dev/rpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Snapshotter implements ports.Snapshotter by generating programs and
// handing them to the interpreter.
type Snapshotter struct {
	interp ports.Interpreter
}

// NewSnapshotter creates a new snapshotter.
func NewSnapshotter(interp ports.Interpreter) *Snapshotter {
	return &Snapshotter{interp: interp}
}

// Initialized reports whether the project has a lockfile.
func (s *Snapshotter) Initialized(env domain.Environment) bool {
	_, err := os.Stat(env.LockPath())
	return err == nil
}

// Init sets up the subsystem in the project and writes the first lockfile.
func (s *Snapshotter) Init(ctx context.Context, env domain.Environment, out io.Writer) error {
	return s.run(ctx, env, initProgram(env), out, domain.ErrInitFailed)
}

// Restore installs the packages recorded in the lockfile into the library.
func (s *Snapshotter) Restore(ctx context.Context, env domain.Environment, out io.Writer) error {
	return s.run(ctx, env, restoreProgram(env), out, domain.ErrRestoreFailed)
}

// Clean removes packages from the library that the project no longer needs.
func (s *Snapshotter) Clean(ctx context.Context, env domain.Environment, out io.Writer) error {
	return s.run(ctx, env, cleanProgram(env), out, domain.ErrCleanFailed)
}

// Snapshot records the current library state in the lockfile.
func (s *Snapshotter) Snapshot(ctx context.Context, env domain.Environment, out io.Writer) error {
	return s.run(ctx, env, snapshotProgram(env), out, domain.ErrSnapshotFailed)
}

// Status compares the lockfile against the project library.
func (s *Snapshotter) Status(ctx context.Context, env domain.Environment, out io.Writer) (domain.LibraryStatus, error) {
	result, err := s.interp.Run(ctx, env, statusProgram(env), out)
	if err != nil {
		return domain.LibraryStatus{}, err
	}
	if !result.OK {
		return domain.LibraryStatus{}, result.FailureError(domain.ErrStatusFailed)
	}

	var payload struct {
		Packages []struct {
			Name         string `json:"name"`
			Version      string `json:"version"`
			Installed    string `json:"installed"`
			Synchronized bool   `json:"synchronized"`
		} `json:"packages"`
	}
	if err := json.Unmarshal(result.Data, &payload); err != nil {
		return domain.LibraryStatus{}, errors.Join(domain.ErrStatusFailed,
			zerr.Wrap(err, "decode status payload"))
	}

	status := domain.LibraryStatus{}
	for _, p := range payload.Packages {
		status.Packages = append(status.Packages, domain.PackageStatus{
			Name:         p.Name,
			Version:      p.Version,
			Installed:    p.Installed,
			Synchronized: p.Synchronized,
		})
	}
	return status, nil
}

func (s *Snapshotter) run(ctx context.Context, env domain.Environment, program domain.Program, out io.Writer, sentinel error) error {
	result, err := s.interp.Run(ctx, env, program, out)
	if err != nil {
		return err
	}
	if !result.OK {
		return result.FailureError(sentinel)
	}
	return nil
}
