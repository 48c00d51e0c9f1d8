package ports

import "go.rpack.dev/rpack/internal/core/domain"

// ConfigLoader resolves the environment a command operates on.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load builds the environment for a project root, applying overrides
	// from the configuration file. path selects an explicit file; when it
	// is empty the default location inside root is used, and a missing
	// file yields the default environment.
	Load(root, path string) (domain.Environment, error)
}
