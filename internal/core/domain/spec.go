package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PackageSpec is a package reference given on the command line, either
// "name" or "name@version".
type PackageSpec struct {
	Name    string
	Version string
}

// ParsePackageSpec splits a command line package token on the first '@'.
// Names containing '@' are not representable; everything after the first
// '@' is taken as the version.
func ParsePackageSpec(token string) (PackageSpec, error) {
	name, version, found := strings.Cut(token, "@")
	name = strings.TrimSpace(name)
	version = strings.TrimSpace(version)
	if name == "" {
		return PackageSpec{}, zerr.With(ErrInvalidPackageSpec, "argument", token)
	}
	if found && version == "" {
		return PackageSpec{}, zerr.With(ErrInvalidPackageSpec, "argument", token)
	}
	return PackageSpec{Name: name, Version: version}, nil
}

// Pinned reports whether the spec requests one exact version.
func (s PackageSpec) Pinned() bool {
	return s.Version != ""
}

// Constraint returns the manifest constraint the spec translates to.
func (s PackageSpec) Constraint() Constraint {
	if !s.Pinned() {
		return Constraint{}
	}
	return Pin(s.Version)
}

func (s PackageSpec) String() string {
	if !s.Pinned() {
		return s.Name
	}
	return s.Name + "@" + s.Version
}
