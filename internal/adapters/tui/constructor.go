// Package tui provides the interactive terminal renderer for rpack commands.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"go.rpack.dev/rpack/internal/ui/output"
)

const defaultTickInterval = 100

// NewModel creates a new TUI model with default settings.
func NewModel(w io.Writer) Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Steps:        make([]*StepNode, 0),
		StepMap:      make(map[string]*StepNode),
		SpanMap:      make(map[string]*StepNode),
		Output:       out,
		AutoScroll:   true,
		FollowMode:   true,
		TickInterval: defaultTickInterval * time.Millisecond,
	}
}

// WithDisableTick disables the spinner tick loop so updates stay
// deterministic.
func (m Model) WithDisableTick() Model {
	m.DisableTick = true
	return m
}
