package tui_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.rpack.dev/rpack/internal/adapters/tui"
	"go.trai.ch/zerr"
)

// View assertions use Contains because the rendered output may carry
// escape sequences depending on the terminal profile.

func TestView_Initializing(t *testing.T) {
	m := &tui.Model{}
	assert.Equal(t, "Initializing...", m.View())
}

func TestView_StepList(t *testing.T) {
	m := sizedModel(t, []string{"restore", "install", "snapshot"})

	view := m.View()
	assert.Contains(t, view, "STEPS")
	assert.Contains(t, view, "restore")
	assert.Contains(t, view, "install")
	assert.Contains(t, view, "snapshot")
	assert.Contains(t, view, "○", "pending steps render a circle")
}

func TestView_StepIcons(t *testing.T) {
	m := sizedModel(t, []string{"restore", "install"})

	m, _ = updateModel(m, tui.MsgStepStart{Name: "restore", SpanID: "span-1"})
	m, _ = updateModel(m, tui.MsgStepComplete{SpanID: "span-1", EndTime: time.Now()})

	m, _ = updateModel(m, tui.MsgStepStart{Name: "install", SpanID: "span-2"})
	m, _ = updateModel(m, tui.MsgStepComplete{
		SpanID:  "span-2",
		EndTime: time.Now(),
		Err:     zerr.New("non-zero exit status"),
	})

	view := m.View()
	assert.Contains(t, view, "✓", "completed steps render a check")
	assert.Contains(t, view, "✗", "failed steps render a cross")
}

func TestView_StepDuration(t *testing.T) {
	m := sizedModel(t, []string{"restore"})

	start := time.Now()
	m, _ = updateModel(m, tui.MsgStepStart{Name: "restore", SpanID: "span-1", StartTime: start})
	m, _ = updateModel(m, tui.MsgStepComplete{SpanID: "span-1", EndTime: start.Add(1500 * time.Millisecond)})

	assert.Contains(t, m.View(), "1.5s")
}

func TestView_LogPane(t *testing.T) {
	t.Run("waiting before any step starts", func(t *testing.T) {
		m := sizedModel(t, []string{"restore"})
		assert.Contains(t, m.View(), "LOGS (Waiting...)")
	})

	t.Run("following the active step", func(t *testing.T) {
		m := sizedModel(t, []string{"restore"})
		m.FollowMode = true

		m, _ = updateModel(m, tui.MsgStepStart{Name: "restore", SpanID: "span-1"})
		m, _ = updateModel(m, tui.MsgStepLog{SpanID: "span-1", Data: []byte("Resolving lockfile ...\n")})

		view := m.View()
		assert.Contains(t, view, "LOGS: restore")
		assert.Contains(t, view, "(Following)")
		assert.Contains(t, view, "Resolving lockfile ...")
	})

	t.Run("manual selection", func(t *testing.T) {
		m := sizedModel(t, []string{"restore", "install"})
		m.FollowMode = true
		m, _ = updateModel(m, tui.MsgStepStart{Name: "install", SpanID: "span-1"})

		// Manual navigation drops out of follow mode.
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})

		view := m.View()
		assert.Contains(t, view, "LOGS: restore")
		assert.Contains(t, view, "(Manual)")
	})
}

// sizedModel builds a model with steps and a window size so View renders
// the full layout.
func sizedModel(t *testing.T, steps []string) *tui.Model {
	t.Helper()
	m := &tui.Model{}
	next, _ := m.Update(tui.MsgInitSteps{Steps: steps})
	next, _ = next.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(*tui.Model)
}
