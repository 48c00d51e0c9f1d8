// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.rpack.dev/rpack/internal/adapters/config"
	_ "go.rpack.dev/rpack/internal/adapters/logger"
	_ "go.rpack.dev/rpack/internal/adapters/manifest"
	_ "go.rpack.dev/rpack/internal/adapters/renv"
	_ "go.rpack.dev/rpack/internal/adapters/rinstall"
	_ "go.rpack.dev/rpack/internal/adapters/rscript"
	// Register app nodes.
	_ "go.rpack.dev/rpack/internal/app"
)
