package domain

import "path/filepath"

// Environment locates the project a command operates on. It is constructed
// once per invocation and handed to every subsystem call, so no adapter
// depends on process wide interpreter state.
type Environment struct {
	// Root is the absolute path of the project root.
	Root string

	// Manifest is the absolute path of the DESCRIPTION file.
	Manifest string

	// Library is the absolute path of the project library directory.
	Library string

	// Rscript is the interpreter command, either a bare name resolved
	// against PATH or an absolute path.
	Rscript string

	// Repos maps repository names to URLs, in the sense of the R repos option.
	Repos map[string]string
}

// NewEnvironment returns the environment for a project root using the
// default layout and repositories.
func NewEnvironment(root string) Environment {
	return Environment{
		Root:     root,
		Manifest: filepath.Join(root, DefaultManifestPath()),
		Library:  filepath.Join(root, DefaultLibraryPath()),
		Rscript:  DefaultRscript,
		Repos:    DefaultRepos(),
	}
}

// LockPath returns the absolute path of the lockfile.
func (e Environment) LockPath() string {
	return filepath.Join(e.Root, DefaultLockPath())
}
