package ports

import (
	"context"
	"io"

	"go.rpack.dev/rpack/internal/core/domain"
)

//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks

// Installer installs and removes packages in the project library.
type Installer interface {
	// InstallDeclared installs the dependencies declared in the manifest,
	// honoring pinned versions and remote sources. deps carries the
	// declared dependencies so pins can be checked without re-reading the
	// manifest.
	InstallDeclared(ctx context.Context, env domain.Environment, deps []domain.Dependency, out io.Writer) error
	// Uninstall removes a package from the library. Removing a package
	// that is not installed is not an error.
	Uninstall(ctx context.Context, env domain.Environment, name string, out io.Writer) error
	// InstalledVersion returns the installed version of a package, or the
	// empty string when it is not installed.
	InstalledVersion(ctx context.Context, env domain.Environment, name string) (string, error)
	// InstalledVersions returns the installed versions of the given
	// packages. Packages that are not installed map to the empty string.
	InstalledVersions(ctx context.Context, env domain.Environment, names []string) (map[string]string, error)
	// IsInstalled reports whether a package is present in the library.
	IsInstalled(ctx context.Context, env domain.Environment, name string) (bool, error)
	// Outdated lists installed packages for which a newer version is
	// available in the configured repositories.
	Outdated(ctx context.Context, env domain.Environment, out io.Writer) ([]domain.OutdatedPackage, error)
}
