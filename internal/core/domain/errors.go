package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectNotInitialized is returned when an operation requires project state
	// that has not been set up yet.
	ErrProjectNotInitialized = zerr.New("project is not initialized, run 'rpack init' first")

	// ErrInstallFailed is returned when the installation subsystem reports a failure.
	ErrInstallFailed = zerr.New("package installation failed")

	// ErrUnknownPackage is returned when a command names a package that is not declared
	// in the manifest.
	ErrUnknownPackage = zerr.New("package is not declared in DESCRIPTION")

	// ErrUsage is returned when a command invocation is malformed.
	ErrUsage = zerr.New("invalid usage")

	// ErrInvalidPackageSpec is returned when a package argument cannot be parsed.
	ErrInvalidPackageSpec = zerr.New("invalid package specification, expected format: name or name@version")

	// ErrManifestReadFailed is returned when the DESCRIPTION file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read DESCRIPTION")

	// ErrManifestParseFailed is returned when the DESCRIPTION file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse DESCRIPTION")

	// ErrManifestWriteFailed is returned when the DESCRIPTION file cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write DESCRIPTION")

	// ErrRestoreFailed is returned when restoring the project library from the lockfile fails.
	ErrRestoreFailed = zerr.New("failed to restore project library")

	// ErrSnapshotFailed is returned when recording the library state to the lockfile fails.
	ErrSnapshotFailed = zerr.New("failed to snapshot project library")

	// ErrCleanFailed is returned when pruning unused packages from the library fails.
	ErrCleanFailed = zerr.New("failed to clean project library")

	// ErrStatusFailed is returned when the library status report cannot be produced.
	ErrStatusFailed = zerr.New("failed to read project library status")

	// ErrInitFailed is returned when project initialization fails.
	ErrInitFailed = zerr.New("failed to initialize project")

	// ErrUninstallFailed is returned when removing an installed package fails.
	ErrUninstallFailed = zerr.New("failed to remove installed package")

	// ErrVersionLookupFailed is returned when the installed version of a package
	// cannot be determined.
	ErrVersionLookupFailed = zerr.New("failed to look up installed package version")

	// ErrOutdatedLookupFailed is returned when the outdated package report cannot be produced.
	ErrOutdatedLookupFailed = zerr.New("failed to list outdated packages")

	// ErrMissingPackages is returned by the check command when declared packages
	// are not installed.
	ErrMissingPackages = zerr.New("missing packages, run 'rpack install' to install them")

	// ErrInterpreterNotFound is returned when the Rscript executable cannot be located.
	ErrInterpreterNotFound = zerr.New("Rscript not found, install R and make sure Rscript is on PATH")

	// ErrInterpreterFailed is returned when an R subprocess exits without producing a result.
	ErrInterpreterFailed = zerr.New("R subprocess failed")

	// ErrResultParseFailed is returned when the result payload of an R subprocess
	// cannot be decoded.
	ErrResultParseFailed = zerr.New("failed to decode R result payload")

	// ErrScriptWriteFailed is returned when the temporary R program file cannot be written.
	ErrScriptWriteFailed = zerr.New("failed to write temporary R program")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")
)
