package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.rpack.dev/rpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ManifestStore on the local filesystem.
type Store struct{}

// NewStore creates a new manifest store.
func NewStore() *Store {
	return &Store{}
}

// EnsureExists writes a minimal manifest when none is present and reports
// whether a new file was created.
func (s *Store) EnsureExists(env domain.Environment) (bool, error) {
	_, err := os.Stat(env.Manifest)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, errors.Join(domain.ErrManifestReadFailed,
			zerr.With(zerr.Wrap(err, "stat manifest"), "path", env.Manifest))
	}
	if err := s.write(env, Render(domain.NewManifest(domain.DefaultPackageName))); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads and parses the manifest.
func (s *Store) Load(env domain.Environment) (*domain.Manifest, error) {
	content, err := os.ReadFile(env.Manifest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrManifestReadFailed,
				zerr.With(zerr.New("manifest not found"), "path", env.Manifest))
		}
		return nil, errors.Join(domain.ErrManifestReadFailed,
			zerr.With(zerr.Wrap(err, "read manifest"), "path", env.Manifest))
	}
	m, err := Parse(content)
	if err != nil {
		return nil, errors.Join(domain.ErrManifestParseFailed,
			zerr.With(zerr.Wrap(err, "parse manifest"), "path", env.Manifest))
	}
	return m, nil
}

// Save renders the manifest and writes it atomically. The write is skipped
// when the rendered content matches the file on disk, so a command that ends
// up changing nothing leaves the mtime alone.
func (s *Store) Save(env domain.Environment, m *domain.Manifest) error {
	rendered := Render(m)
	if current, err := os.ReadFile(env.Manifest); err == nil {
		if xxhash.Sum64(current) == xxhash.Sum64(rendered) {
			return nil
		}
	}
	return s.write(env, rendered)
}

func (s *Store) write(env domain.Environment, content []byte) error {
	if err := atomicWriteFile(env.Manifest, content); err != nil {
		return errors.Join(domain.ErrManifestWriteFailed,
			zerr.With(zerr.Wrap(err, "write manifest"), "path", env.Manifest))
	}
	return nil
}

// atomicWriteFile writes content to a temporary file in the target directory
// and renames it into place, so readers never observe a half written file.
func atomicWriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "close temp file")
	}
	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "chmod temp file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return zerr.Wrap(err, "rename temp file")
	}
	return nil
}
