package tui_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rpack.dev/rpack/internal/adapters/tui"
	"go.trai.ch/zerr"
)

func TestModel_Update(t *testing.T) {
	const (
		stepName1 = "restore"
		stepName2 = "install"
		stepName3 = "snapshot"
		spanID1   = "span-1"
		spanID2   = "span-2"
	)
	initialSteps := []string{stepName1, stepName2, stepName3}

	// Helper to initialize a fresh model
	initModel := func(_ *testing.T) *tui.Model {
		m := &tui.Model{}
		updatedModel, _ := m.Update(tui.MsgInitSteps{Steps: initialSteps})
		return updatedModel.(*tui.Model)
	}

	t.Run("Window Resizing", func(t *testing.T) {
		m := initModel(t)

		width, height := 100, 50
		msg := tea.WindowSizeMsg{Width: width, Height: height}
		updatedModel, _ := m.Update(msg)
		m = updatedModel.(*tui.Model)

		// Derived from stepListWidthRatio = 0.3 and logPaneBorderWidth = 4.
		expectedListWidth := int(float64(width) * 0.3)
		expectedLogWidth := width - expectedListWidth - 4

		assert.Equal(t, expectedLogWidth, m.LogWidth, "LogWidth calculation incorrect")
		assert.Equal(t, expectedLogWidth, m.Steps[0].Term.Width, "step term width not updated")

		// ListHeight depends on header rendering, so we just check it is reasonable
		assert.Positive(t, m.ListHeight, "ListHeight should be positive")
		assert.Less(t, m.ListHeight, height, "ListHeight should be less than total height")
		assert.Positive(t, m.LogHeight, "LogHeight should be positive")
		assert.Equal(t, m.LogHeight, m.Steps[0].Term.Height, "step term height not updated")
	})

	t.Run("Navigation & Keybindings", func(t *testing.T) {
		t.Run("Selection Navigation", func(t *testing.T) {
			m := initModel(t)
			m.SelectedIdx = 0

			// Move Down (j)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
			assert.Equal(t, 1, m.SelectedIdx)
			assert.False(t, m.FollowMode, "FollowMode should be disabled on manual nav")

			// Move Down (down key)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
			assert.Equal(t, 2, m.SelectedIdx)

			// Bounds check (end of list)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
			assert.Equal(t, 2, m.SelectedIdx)

			// Move Up (k)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
			assert.Equal(t, 1, m.SelectedIdx)

			// Move Up (up key)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})
			assert.Equal(t, 0, m.SelectedIdx)

			// Bounds check (start of list)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})
			assert.Equal(t, 0, m.SelectedIdx)
		})

		t.Run("Quit Commands", func(t *testing.T) {
			m := initModel(t)

			// q
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
			assert.Equal(t, tea.Quit(), cmd(), "q should return tea.Quit")

			// ctrl+c
			_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
			assert.Equal(t, tea.Quit(), cmd(), "ctrl+c should return tea.Quit")
		})

		t.Run("Follow Mode (Esc)", func(t *testing.T) {
			m := initModel(t)

			// Start step 2 to have a running step
			m, _ = updateModel(m, tui.MsgStepStart{Name: stepName2, SpanID: spanID1})

			// Move selection away manually
			m.SelectedIdx = 0
			m.FollowMode = false

			// Press Esc
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEsc})

			assert.True(t, m.FollowMode, "Esc should enable FollowMode")
			assert.Equal(t, 1, m.SelectedIdx, "Esc should jump to running step (index 1)")
		})

		t.Run("Key Forwarding to Log Pane", func(t *testing.T) {
			m := initModel(t)

			m, _ = updateModel(m, tui.MsgStepStart{Name: stepName1, SpanID: spanID1})
			m.ActiveStepName = stepName1

			node := m.StepMap[stepName1]
			node.Term.SetHeight(2)
			_, err := node.Term.Write([]byte("0\n1\n2\n3"))
			require.NoError(t, err)
			require.Equal(t, 2, node.Term.Offset, "log should stick to bottom")

			// Unhandled keys go to the active step's terminal.
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyHome})
			assert.Equal(t, 0, node.Term.Offset, "home should scroll the log pane to the top")
		})
	})

	t.Run("Step Events", func(t *testing.T) {
		t.Run("MsgInitSteps", func(t *testing.T) {
			m := &tui.Model{}
			msg := tui.MsgInitSteps{Steps: []string{"restore", "install"}}
			updatedModel, _ := m.Update(msg)
			m = updatedModel.(*tui.Model)

			assert.Len(t, m.Steps, 2)
			assert.Len(t, m.StepMap, 2)
			assert.Equal(t, "restore", m.Steps[0].Name)
			assert.Equal(t, tui.StatusPending, m.Steps[0].Status)
		})

		t.Run("MsgStepStart", func(t *testing.T) {
			m := initModel(t)

			msg := tui.MsgStepStart{Name: stepName1, SpanID: spanID1}
			updatedModel, _ := m.Update(msg)
			m = updatedModel.(*tui.Model)

			requireStepStatus(t, m, stepName1, tui.StatusRunning)
			assert.Equal(t, m.Steps[0], m.SpanMap[spanID1], "SpanMap should map spanID")

			// FollowMode moves the selection along with activity.
			m.FollowMode = true
			msg2 := tui.MsgStepStart{Name: stepName3, SpanID: spanID2}
			updatedModel, _ = m.Update(msg2)
			m = updatedModel.(*tui.Model)

			assert.Equal(t, 2, m.SelectedIdx, "FollowMode should switch selection to new step")
		})

		t.Run("MsgStepStart unknown name", func(t *testing.T) {
			m := initModel(t)

			updatedModel, _ := m.Update(tui.MsgStepStart{Name: "unplanned", SpanID: spanID1})
			m = updatedModel.(*tui.Model)

			assert.Empty(t, m.SpanMap, "steps outside the plan are ignored")
		})

		t.Run("MsgStepLog", func(t *testing.T) {
			m := initModel(t)

			m, _ = updateModel(m, tui.MsgStepStart{Name: stepName1, SpanID: spanID1})

			msg := tui.MsgStepLog{SpanID: spanID1, Data: []byte("Installing dplyr ...\n")}
			updatedModel, _ := m.Update(msg)
			m = updatedModel.(*tui.Model)

			node := m.SpanMap[spanID1]
			assert.Positive(t, node.Term.UsedHeight(), "term should have data")
		})

		t.Run("MsgStepComplete", func(t *testing.T) {
			m := initModel(t)
			m, _ = updateModel(m, tui.MsgStepStart{Name: stepName1, SpanID: spanID1})

			// Success
			msgSuccess := tui.MsgStepComplete{SpanID: spanID1, EndTime: time.Now(), Err: nil}
			m, _ = updateModel(m, msgSuccess)
			requireStepStatus(t, m, stepName1, tui.StatusDone)
			assert.False(t, m.StepMap[stepName1].EndTime.IsZero(), "EndTime should be recorded")

			// Error
			m, _ = updateModel(m, tui.MsgStepStart{Name: stepName2, SpanID: spanID2})
			msgError := tui.MsgStepComplete{SpanID: spanID2, EndTime: time.Now(), Err: zerr.New("non-zero exit status")}
			m, _ = updateModel(m, msgError)
			requireStepStatus(t, m, stepName2, tui.StatusError)
		})
	})

	t.Run("Spinner Tick", func(t *testing.T) {
		t.Run("MsgTick reschedules", func(t *testing.T) {
			m := initModel(t)

			_, cmd := m.Update(tui.MsgTick(time.Now()))
			assert.NotNil(t, cmd, "tick should reschedule itself")
		})

		t.Run("DisableTick stops the loop", func(t *testing.T) {
			m := initModel(t)
			m.DisableTick = true

			_, cmd := m.Update(tui.MsgTick(time.Now()))
			assert.Nil(t, cmd)
		})

		t.Run("Init honors DisableTick", func(t *testing.T) {
			m := tui.NewModel(nil)
			assert.NotNil(t, m.Init())

			m = m.WithDisableTick()
			assert.Nil(t, m.Init())
		})
	})
}

// Helpers.

func updateModel(m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(*tui.Model), cmd
}

func requireStepStatus(t *testing.T, m *tui.Model, stepName string, expected tui.StepStatus) {
	t.Helper()
	node, ok := m.StepMap[stepName]
	require.True(t, ok, "step %s should exist in StepMap", stepName)
	assert.Equal(t, expected, node.Status, "step status for %s should be %s", stepName, expected)
}
