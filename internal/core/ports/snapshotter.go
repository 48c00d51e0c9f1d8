package ports

import (
	"context"
	"io"

	"go.rpack.dev/rpack/internal/core/domain"
)

//go:generate mockgen -source=snapshotter.go -destination=mocks/mock_snapshotter.go -package=mocks

// Snapshotter drives the lockfile subsystem of a project. Interpreter
// output produced by a call is streamed to out as it is produced.
type Snapshotter interface {
	// Initialized reports whether the project has a lockfile.
	Initialized(env domain.Environment) bool
	// Init sets up the subsystem in the project and writes the first
	// lockfile.
	Init(ctx context.Context, env domain.Environment, out io.Writer) error
	// Status compares the lockfile against the project library.
	Status(ctx context.Context, env domain.Environment, out io.Writer) (domain.LibraryStatus, error)
	// Restore installs the packages recorded in the lockfile into the
	// project library.
	Restore(ctx context.Context, env domain.Environment, out io.Writer) error
	// Clean removes packages from the library that are no longer needed
	// by the project.
	Clean(ctx context.Context, env domain.Environment, out io.Writer) error
	// Snapshot records the current library state in the lockfile.
	Snapshot(ctx context.Context, env domain.Environment, out io.Writer) error
}
