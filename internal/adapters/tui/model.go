package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	stepListWidthRatio = 0.3
	logPaneBorderWidth = 4
)

// StepStatus represents the current state of a step.
type StepStatus string

const (
	// StatusPending indicates the step is waiting to start.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is currently executing.
	StatusRunning StepStatus = "Running"
	// StatusDone indicates the step completed successfully.
	StatusDone StepStatus = "Done"
	// StatusError indicates the step failed.
	StatusError StepStatus = "Error"
)

// StepNode represents a single step in the UI list.
type StepNode struct {
	Name      string
	Status    StepStatus
	Term      *Vterm
	StartTime time.Time
	EndTime   time.Time
}

// Model represents the main TUI state.
type Model struct {
	Steps          []*StepNode
	StepMap        map[string]*StepNode // step name -> node
	SpanMap        map[string]*StepNode // spanID -> node
	Output         *termenv.Output
	AutoScroll     bool
	ActiveStepName string
	SelectedIdx    int
	ListOffset     int
	ListHeight     int
	LogWidth       int
	LogHeight      int
	FollowMode     bool
	TickInterval   time.Duration
	DisableTick    bool

	spinnerFrame int
}

// Init starts the spinner tick loop.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) Init() tea.Cmd {
	if m.DisableTick {
		return nil
	}
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	interval := m.TickInterval
	if interval <= 0 {
		interval = defaultTickInterval * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return MsgTick(t)
	})
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) getSelectedStep() *StepNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Steps) {
		return m.Steps[m.SelectedIdx]
	}
	return nil
}

func (m *Model) updateActiveView() {
	if node := m.getSelectedStep(); node != nil {
		m.ActiveStepName = node.Name

		if m.FollowMode && m.AutoScroll {
			maxOff := node.Term.UsedHeight() - node.Term.Height
			if maxOff < 0 {
				maxOff = 0
			}
			node.Term.Offset = maxOff
		}
	}
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop,gocritic // hugeParam ignored, cyclop ignored
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Steps)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "esc":
			m.FollowMode = true
			// Jump to the currently running step if any.
			for i, s := range m.Steps {
				if s.Status == StatusRunning {
					m.SelectedIdx = i
					break
				}
			}
			m.ensureVisible()
			m.updateActiveView()

		default:
			// Forward remaining keys to the active step's terminal so
			// its scrollback can be navigated.
			if m.ActiveStepName != "" {
				if node, ok := m.StepMap[m.ActiveStepName]; ok {
					node.Term.Update(msg)
				}
			}
		}

	case tea.WindowSizeMsg:
		// Split screen: step list on the left, logs on the right.
		listWidth := int(float64(msg.Width) * stepListWidthRatio)
		logWidth := msg.Width - listWidth - logPaneBorderWidth

		headerHeight := lipgloss.Height(titleStyle.Render("LOGS"))
		logHeight := msg.Height - headerHeight

		m.LogWidth = logWidth
		m.LogHeight = logHeight

		fullHeader := titleStyle.Render("STEPS") + "\n\n"
		listInfoHeight := lipgloss.Height(fullHeader)
		m.ListHeight = msg.Height - listInfoHeight
		m.ensureVisible()

		for _, node := range m.Steps {
			node.Term.SetWidth(logWidth)
			node.Term.SetHeight(logHeight)
		}

	case MsgTick:
		m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
		if !m.DisableTick {
			cmd = m.tickCmd()
		}

	case MsgInitSteps:
		m.Steps = make([]*StepNode, len(msg.Steps))
		m.StepMap = make(map[string]*StepNode, len(msg.Steps))
		m.SpanMap = make(map[string]*StepNode)
		for i, name := range msg.Steps {
			term := NewVterm()
			if m.LogWidth > 0 && m.LogHeight > 0 {
				term.SetWidth(m.LogWidth)
				term.SetHeight(m.LogHeight)
			}

			m.Steps[i] = &StepNode{
				Name:   name,
				Status: StatusPending,
				Term:   term,
			}
			m.StepMap[name] = m.Steps[i]
		}

	case MsgStepStart:
		if node, ok := m.StepMap[msg.Name]; ok {
			node.Status = StatusRunning
			node.StartTime = msg.StartTime
			m.SpanMap[msg.SpanID] = node

			// Focus follows activity only while FollowMode is on.
			if m.FollowMode {
				m.ActiveStepName = msg.Name
				for i, s := range m.Steps {
					if s.Name == msg.Name {
						m.SelectedIdx = i
						break
					}
				}
				m.ensureVisible()
				m.updateActiveView()
			}
		}

	case MsgStepLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			_, _ = node.Term.Write(msg.Data)
		}

	case MsgStepComplete:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			node.EndTime = msg.EndTime
			if msg.Err != nil {
				node.Status = StatusError
			} else {
				node.Status = StatusDone
			}
		}
	}

	return m, cmd
}
