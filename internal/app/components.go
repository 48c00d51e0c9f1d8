package app

import "go.rpack.dev/rpack/internal/core/ports"

// Components holds the initialized application pieces the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
