package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PaceDelay is the fixed pause before a calculation result is
// published. Pure UX pacing, not computation cost.
const PaceDelay = 800 * time.Millisecond

// paceDoneMsg signals that the pacing window elapsed.
type paceDoneMsg struct{}

// PaceModel shows a spinner for the pacing window, then quits. While it
// runs the terminal accepts no further submissions, so overlapping
// calculations cannot race.
type PaceModel struct {
	spinner spinner.Model
	delay   time.Duration
	done    bool
}

// NewPaceModel creates a pacing spinner with the given delay.
func NewPaceModel(delay time.Duration) *PaceModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorHeader)
	return &PaceModel{spinner: s, delay: delay}
}

// Init implements tea.Model.
func (m *PaceModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(m.delay, func(time.Time) tea.Msg { return paceDoneMsg{} }),
	)
}

// Update implements tea.Model.
func (m *PaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case paceDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		// No cancellation semantic: the calculation runs to completion.
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m *PaceModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " calculating..."
}

// Done reports whether the pacing window completed.
func (m *PaceModel) Done() bool {
	return m.done
}
