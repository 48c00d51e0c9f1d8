package domain

// PackageStatus describes one package in the library status report.
type PackageStatus struct {
	Name string

	// Version is the version recorded in the lockfile.
	Version string

	// Installed is the version present in the library, empty when the
	// package is missing.
	Installed string

	// Synchronized is false when the installed state diverges from the
	// lockfile, either direction.
	Synchronized bool
}

// LibraryStatus is the synchronization report of the project library against
// the lock record, as produced by the snapshot subsystem.
type LibraryStatus struct {
	Packages []PackageStatus
}

// NeedsRestore reports whether any package diverges from the lock record.
func (s LibraryStatus) NeedsRestore() bool {
	for _, p := range s.Packages {
		if !p.Synchronized {
			return true
		}
	}
	return false
}

// Unsynchronized returns the packages that diverge from the lock record.
func (s LibraryStatus) Unsynchronized() []PackageStatus {
	var out []PackageStatus
	for _, p := range s.Packages {
		if !p.Synchronized {
			out = append(out, p)
		}
	}
	return out
}

// OutdatedPackage is one row of the outdated report: an installed package for
// which the repositories carry a newer version.
type OutdatedPackage struct {
	Name      string
	Installed string
	Available string
}
