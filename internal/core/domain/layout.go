package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "DESCRIPTION"

	// LockFileName is the name of the lockfile maintained by the snapshot subsystem.
	LockFileName = "renv.lock"

	// RenvDirName is the name of the snapshot subsystem's project directory.
	RenvDirName = "renv"

	// LibraryDirName is the name of the project library directory inside RenvDirName.
	LibraryDirName = "library"

	// ConfigFileName is the name of the optional tool configuration file.
	ConfigFileName = "rpack.yaml"

	// DefaultRscript is the interpreter command used when no override is
	// configured. It is resolved against PATH at execution time.
	DefaultRscript = "Rscript"

	// DefaultPackageName is the package identifier written when a manifest is
	// created from scratch.
	DefaultPackageName = "app"

	// DefaultRepoName is the name of the default package repository.
	DefaultRepoName = "CRAN"

	// DefaultRepoURL is the URL of the default package repository.
	DefaultRepoURL = "https://cloud.r-project.org"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultManifestPath returns the manifest path relative to the project root.
func DefaultManifestPath() string {
	return ManifestFileName
}

// DefaultLockPath returns the lockfile path relative to the project root.
func DefaultLockPath() string {
	return LockFileName
}

// DefaultLibraryPath returns the project library path relative to the project root.
// It joins renv and library.
func DefaultLibraryPath() string {
	return filepath.Join(RenvDirName, LibraryDirName)
}

// DefaultRepos returns the repositories configured when a project is initialized.
func DefaultRepos() map[string]string {
	return map[string]string{DefaultRepoName: DefaultRepoURL}
}
