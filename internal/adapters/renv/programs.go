package renv

import (
	"fmt"

	"go.rpack.dev/rpack/internal/adapters/rscript"
	"go.rpack.dev/rpack/internal/core/domain"
)

// lockGuard aborts a program with a typed result when the project has no
// lockfile, so callers never have to scrape interpreter output to detect an
// uninitialized project.
const lockGuard = `  if (!file.exists("renv.lock")) {
    rpack__fail("not_initialized", "renv.lock not found, run 'rpack init' first")
  }`

func initProgram(env domain.Environment) domain.Program {
	body := fmt.Sprintf(`  options(repos = %s)
  renv::init(project = ".", bare = TRUE, load = FALSE, restart = FALSE)
  renv::settings$snapshot.type("explicit")
  renv::snapshot(project = ".", prompt = FALSE)
  rpack__ok()`, rscript.ReposLiteral(env.Repos))
	return rscript.Wrap("init", body)
}

func restoreProgram(env domain.Environment) domain.Program {
	body := fmt.Sprintf(`%s
  renv::restore(project = ".", library = %s, prompt = FALSE, clean = FALSE)
  rpack__ok()`, lockGuard, rscript.Quote(env.Library))
	return rscript.Wrap("restore", body)
}

func statusProgram(env domain.Environment) domain.Program {
	body := fmt.Sprintf(`%s
  lock <- renv::lockfile_read("renv.lock")
  installed <- utils::installed.packages(lib.loc = %s)
  rows <- character(0)
  for (name in names(lock$Packages)) {
    wanted <- lock$Packages[[name]]$Version
    have <- ""
    if (name %%in%% rownames(installed)) {
      have <- as.character(installed[name, "Version"])
    }
    rows <- c(rows, paste0(
      "{\"name\":", rpack__string(name),
      ",\"version\":", rpack__string(wanted),
      ",\"installed\":", rpack__string(have),
      ",\"synchronized\":", rpack__bool(identical(have, wanted)), "}"
    ))
  }
  rpack__ok(paste0("{\"packages\":[", paste(rows, collapse = ","), "]}"))`, lockGuard, rscript.Quote(env.Library))
	return rscript.Wrap("status", body)
}

func cleanProgram(_ domain.Environment) domain.Program {
	body := `  renv::clean(project = ".", prompt = FALSE)
  rpack__ok()`
	return rscript.Wrap("clean", body)
}

func snapshotProgram(env domain.Environment) domain.Program {
	body := fmt.Sprintf(`  options(repos = %s)
  renv::snapshot(project = ".", library = %s, type = "explicit", prompt = FALSE)
  rpack__ok()`, rscript.ReposLiteral(env.Repos), rscript.Quote(env.Library))
	return rscript.Wrap("snapshot", body)
}
