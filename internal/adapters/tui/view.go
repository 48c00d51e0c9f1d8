package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"go.rpack.dev/rpack/internal/ui/style"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View renders the UI.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.stepList(),
		m.logPane(),
	)
}

//nolint:gocritic // hugeParam ignored
func (m *Model) stepList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("STEPS") + "\n\n")

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.Steps) {
		end = len(m.Steps)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		step := m.Steps[i]
		s.WriteString(m.renderStepRow(i, step) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderStepRow(index int, step *StepNode) string {
	icon := m.stepIcon(step)
	rowStyle := m.stepStyle(step)

	// Highlight the selected step.
	var cursor string
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		if step.Status != StatusDone && step.Status != StatusError {
			rowStyle = selectedStyle
		}
	} else {
		cursor = "  "
	}

	row := cursor + rowStyle.Render(fmt.Sprintf("%s %s", icon, step.Name))
	if d := stepDuration(step); d != "" {
		row += " " + durationStyle.Render(d)
	}
	return row
}

func (m *Model) stepIcon(step *StepNode) string {
	switch step.Status {
	case StatusRunning:
		return spinnerFrames[m.spinnerFrame%len(spinnerFrames)]
	case StatusDone:
		return style.Check
	case StatusError:
		return style.Cross
	default: // Pending
		return style.Circle
	}
}

func (m *Model) stepStyle(step *StepNode) lipgloss.Style {
	switch step.Status {
	case StatusRunning:
		return stepRunningStyle
	case StatusDone:
		return stepDoneStyle
	case StatusError:
		return stepErrorStyle
	default: // Pending
		return stepPendingStyle
	}
}

// stepDuration formats the elapsed time of a finished step.
func stepDuration(step *StepNode) string {
	if step.StartTime.IsZero() || step.EndTime.IsZero() {
		return ""
	}
	return step.EndTime.Sub(step.StartTime).Round(10 * time.Millisecond).String()
}

//nolint:gocritic // hugeParam ignored
func (m *Model) logPane() string {
	var header string
	var content string

	if m.ActiveStepName != "" {
		mode := " (Following)"
		if !m.FollowMode {
			mode = " (Manual)"
		}

		headerStyle := titleStyle
		if node, ok := m.StepMap[m.ActiveStepName]; ok {
			if node.Status == StatusError {
				headerStyle = failureTitleStyle
			}
			content = node.Term.View()
		}
		header = headerStyle.Render("LOGS: " + m.ActiveStepName + mode)
	} else {
		header = titleStyle.Render("LOGS (Waiting...)")
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			content,
		),
	)
}
