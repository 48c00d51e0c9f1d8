// Package config provides the configuration loader for rpack.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.rpack.dev/rpack/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load builds the environment for a project root. When path is empty the
// configuration is read from rpack.yaml inside root, and a missing file
// yields the default environment. An explicitly given path must exist.
func (l *Loader) Load(root, path string) (domain.Environment, error) {
	env := domain.NewEnvironment(root)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, domain.ConfigFileName)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return env, nil
		}
		return domain.Environment{}, errors.Join(domain.ErrConfigReadFailed,
			zerr.With(zerr.Wrap(err, "read config"), "path", path))
	}

	var file Rpackfile
	if parseErr := yaml.Unmarshal(data, &file); parseErr != nil {
		return domain.Environment{}, errors.Join(domain.ErrConfigParseFailed,
			zerr.With(zerr.Wrap(parseErr, "parse config"), "path", path))
	}

	if file.Rscript != "" {
		env.Rscript = file.Rscript
	}
	if file.Library != "" {
		env.Library = resolvePath(root, file.Library)
	}
	if len(file.Repos) > 0 {
		env.Repos = file.Repos
	}
	return env, nil
}

// resolvePath keeps absolute paths and resolves relative ones against root.
func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(root, path))
}
