package ports

import "go.rpack.dev/rpack/internal/core/domain"

//go:generate mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks

// ManifestStore reads and writes the project manifest.
type ManifestStore interface {
	// EnsureExists writes a minimal manifest when none is present. It
	// reports whether a new file was created.
	EnsureExists(env domain.Environment) (bool, error)
	// Load parses the manifest.
	Load(env domain.Environment) (*domain.Manifest, error)
	// Save renders the manifest and writes it atomically. The write is
	// skipped when the rendered content matches the file on disk.
	Save(env domain.Environment, m *domain.Manifest) error
}
