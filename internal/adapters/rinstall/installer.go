// Package rinstall installs and removes packages in the project library
// through the remotes tooling.
package rinstall

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"go.rpack.dev/rpack/internal/core/domain"
	"go.rpack.dev/rpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer by generating programs and handing
// them to the interpreter.
type Installer struct {
	interp ports.Interpreter
}

// NewInstaller creates a new installer.
func NewInstaller(interp ports.Interpreter) *Installer {
	return &Installer{interp: interp}
}

// InstallDeclared installs the dependencies declared in the manifest. Pinned
// dependencies go through the exact version path first; a pin whose version
// is already installed is skipped entirely. The subsystem then resolves the
// remaining declarations, including remote sources, from the manifest itself.
func (i *Installer) InstallDeclared(ctx context.Context, env domain.Environment, deps []domain.Dependency, out io.Writer) error {
	for _, dep := range deps {
		// "R" is the interpreter requirement, not an installable package.
		if dep.Name == "R" || !dep.Constraint.Pinned() {
			continue
		}
		pin := dep.Constraint.PinnedVersion()
		have, err := i.InstalledVersion(ctx, env, dep.Name)
		if err != nil {
			return err
		}
		if have == pin {
			continue
		}
		if err := i.install(ctx, env, installVersionProgram(env, dep.Name, pin), out); err != nil {
			return err
		}
	}
	return i.install(ctx, env, installDepsProgram(env), out)
}

// Uninstall removes a package from the library. The generated program skips
// packages that are not installed, so removal is idempotent.
func (i *Installer) Uninstall(ctx context.Context, env domain.Environment, name string, out io.Writer) error {
	result, err := i.interp.Run(ctx, env, uninstallProgram(env, name), out)
	if err != nil {
		return err
	}
	if !result.OK {
		return result.FailureError(domain.ErrUninstallFailed)
	}
	return nil
}

// InstalledVersion returns the installed version of a package, or the empty
// string when it is not installed.
func (i *Installer) InstalledVersion(ctx context.Context, env domain.Environment, name string) (string, error) {
	versions, err := i.InstalledVersions(ctx, env, []string{name})
	if err != nil {
		return "", err
	}
	return versions[name], nil
}

// InstalledVersions returns the installed versions of the given packages in
// a single interpreter pass.
func (i *Installer) InstalledVersions(ctx context.Context, env domain.Environment, names []string) (map[string]string, error) {
	if len(names) == 0 {
		return map[string]string{}, nil
	}
	result, err := i.interp.Run(ctx, env, versionsProgram(env, names), io.Discard)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, result.FailureError(domain.ErrVersionLookupFailed)
	}

	var payload struct {
		Versions map[string]string `json:"versions"`
	}
	if err := json.Unmarshal(result.Data, &payload); err != nil {
		return nil, errors.Join(domain.ErrVersionLookupFailed,
			zerr.Wrap(err, "decode versions payload"))
	}
	if payload.Versions == nil {
		payload.Versions = map[string]string{}
	}
	return payload.Versions, nil
}

// IsInstalled reports whether a package is present in the library.
func (i *Installer) IsInstalled(ctx context.Context, env domain.Environment, name string) (bool, error) {
	version, err := i.InstalledVersion(ctx, env, name)
	if err != nil {
		return false, err
	}
	return version != "", nil
}

// Outdated lists installed packages for which the repositories carry a newer
// version.
func (i *Installer) Outdated(ctx context.Context, env domain.Environment, out io.Writer) ([]domain.OutdatedPackage, error) {
	result, err := i.interp.Run(ctx, env, outdatedProgram(env), out)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, result.FailureError(domain.ErrOutdatedLookupFailed)
	}

	var payload struct {
		Packages []struct {
			Name      string `json:"name"`
			Installed string `json:"installed"`
			Available string `json:"available"`
		} `json:"packages"`
	}
	if err := json.Unmarshal(result.Data, &payload); err != nil {
		return nil, errors.Join(domain.ErrOutdatedLookupFailed,
			zerr.Wrap(err, "decode outdated payload"))
	}

	var outdated []domain.OutdatedPackage
	for _, p := range payload.Packages {
		outdated = append(outdated, domain.OutdatedPackage{
			Name:      p.Name,
			Installed: p.Installed,
			Available: p.Available,
		})
	}
	return outdated, nil
}

func (i *Installer) install(ctx context.Context, env domain.Environment, program domain.Program, out io.Writer) error {
	result, err := i.interp.Run(ctx, env, program, out)
	if err != nil {
		return err
	}
	if !result.OK {
		return result.FailureError(domain.ErrInstallFailed)
	}
	return nil
}
