package rinstall

import (
	"fmt"

	"go.rpack.dev/rpack/internal/adapters/rscript"
	"go.rpack.dev/rpack/internal/core/domain"
)

// Programs run with --vanilla, so the project library is never on the search
// path by itself. Every program that resolves packages prepends it.

func installDepsProgram(env domain.Environment) domain.Program {
	body := fmt.Sprintf(`  options(repos = %s)
  .libPaths(c(%s, .libPaths()))
  remotes::install_deps(".", lib = %s, dependencies = TRUE, upgrade = "never")
  rpack__ok()`, rscript.ReposLiteral(env.Repos), rscript.Quote(env.Library), rscript.Quote(env.Library))
	return rscript.Wrap("install", body)
}

func installVersionProgram(env domain.Environment, name, version string) domain.Program {
	body := fmt.Sprintf(`  options(repos = %s)
  .libPaths(c(%s, .libPaths()))
  remotes::install_version(%s, version = %s, lib = %s, upgrade = "never")
  rpack__ok()`, rscript.ReposLiteral(env.Repos), rscript.Quote(env.Library),
		rscript.Quote(name), rscript.Quote(version), rscript.Quote(env.Library))
	return rscript.Wrap(fmt.Sprintf("install %s", name), body)
}

func uninstallProgram(env domain.Environment, name string) domain.Program {
	body := fmt.Sprintf(`  if (%s %%in%% rownames(utils::installed.packages(lib.loc = %s))) {
    utils::remove.packages(%s, lib = %s)
  }
  rpack__ok()`, rscript.Quote(name), rscript.Quote(env.Library),
		rscript.Quote(name), rscript.Quote(env.Library))
	return rscript.Wrap(fmt.Sprintf("uninstall %s", name), body)
}

func versionsProgram(env domain.Environment, names []string) domain.Program {
	body := fmt.Sprintf(`  installed <- utils::installed.packages(lib.loc = %s)
  entries <- character(0)
  for (name in %s) {
    have <- ""
    if (name %%in%% rownames(installed)) {
      have <- as.character(installed[name, "Version"])
    }
    entries <- c(entries, paste0(rpack__string(name), ":", rpack__string(have)))
  }
  rpack__ok(paste0("{\"versions\":{", paste(entries, collapse = ","), "}}"))`,
		rscript.Quote(env.Library), rscript.QuoteVector(names))
	return rscript.Wrap("versions", body)
}

func outdatedProgram(env domain.Environment) domain.Program {
	body := fmt.Sprintf(`  options(repos = %s)
  old <- utils::old.packages(lib.loc = %s)
  rows <- character(0)
  if (!is.null(old)) {
    for (name in rownames(old)) {
      rows <- c(rows, paste0(
        "{\"name\":", rpack__string(name),
        ",\"installed\":", rpack__string(old[name, "Installed"]),
        ",\"available\":", rpack__string(old[name, "ReposVer"]), "}"
      ))
    }
  }
  rpack__ok(paste0("{\"packages\":[", paste(rows, collapse = ","), "]}"))`,
		rscript.ReposLiteral(env.Repos), rscript.Quote(env.Library))
	return rscript.Wrap("outdated", body)
}
