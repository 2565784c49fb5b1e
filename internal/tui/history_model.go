package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/commutrace/commutrace/internal/catalog"
	"github.com/commutrace/commutrace/internal/impact"
	"github.com/commutrace/commutrace/internal/store"
)

// historyDefaultHeight is the viewport height before the first
// WindowSizeMsg arrives.
const historyDefaultHeight = 20

// chromeRows is the number of non-list rows (header, footer).
const chromeRows = 3

// HistoryModel is the Bubble Tea model for browsing the calculation
// log. Records arrive most-recent-first and only the visible window is
// rendered, so large logs scroll smoothly.
type HistoryModel struct {
	records  []store.Record
	selected int
	offset   int
	height   int
	width    int
}

// NewHistoryModel creates a history browser over the given records.
func NewHistoryModel(records []store.Record) *HistoryModel {
	return &HistoryModel{
		records: records,
		height:  historyDefaultHeight,
	}
}

// Init implements tea.Model.
func (m *HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.clampScroll()
		return m, nil
	}
	return m, nil
}

//nolint:exhaustive // Navigation handles a fixed key subset.
func (m *HistoryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.viewRows()

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyPgUp:
		m.move(-page)
	case tea.KeyPgDown:
		m.move(page)
	case tea.KeyHome:
		m.selected = 0
		m.clampScroll()
	case tea.KeyEnd:
		m.selected = len(m.records) - 1
		m.clampScroll()
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			break
		}
		switch msg.Runes[0] {
		case 'q':
			return m, tea.Quit
		case 'j':
			m.move(1)
		case 'k':
			m.move(-1)
		case 'g':
			m.selected = 0
			m.clampScroll()
		case 'G':
			m.selected = len(m.records) - 1
			m.clampScroll()
		}
	}

	return m, nil
}

// View renders the visible window of the record list.
func (m *HistoryModel) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	footerStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Calculation history") + "\n")

	if len(m.records) == 0 {
		b.WriteString(footerStyle.Render("  no records yet; run `commutrace calc`") + "\n")
		return b.String()
	}

	from := m.offset
	to := min(from+m.viewRows(), len(m.records))
	for i := from; i < to; i++ {
		b.WriteString(m.renderRow(i) + "\n")
	}

	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"  %d/%d  ↑/↓ scroll  q quit", m.selected+1, len(m.records))))
	return b.String()
}

// renderRow renders one record line, highlighting the selection.
func (m *HistoryModel) renderRow(i int) string {
	r := m.records[i]

	vehicle := r.VehicleType
	if _, err := catalog.Lookup(vehicle); err != nil {
		// Unresolved keys display as the literal stored string.
		vehicle += " (?)"
	}

	legacy := ""
	if r.AssumedLegacyUnits {
		legacy = " *"
	}

	line := fmt.Sprintf("%s  %-12s %8.2f mi  %s/day  %s/yr%s",
		r.Timestamp.Format("2006-01-02 15:04"),
		vehicle,
		r.DistanceMiles,
		impact.FormatMass(r.EmissionsPerDay, r.EmissionsUnit),
		impact.FormatMass(r.EmissionsPerYear, r.EmissionsUnit),
		legacy)

	if i == m.selected {
		return lipgloss.NewStyle().
			Foreground(ColorSelected).
			Bold(true).
			Render("> " + line)
	}
	return "  " + line
}

// move shifts the selection by delta and keeps it in view.
func (m *HistoryModel) move(delta int) {
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected > len(m.records)-1 {
		m.selected = len(m.records) - 1
	}
	m.clampScroll()
}

// clampScroll keeps the selected row inside the visible window.
func (m *HistoryModel) clampScroll() {
	rows := m.viewRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// viewRows returns the number of list rows that fit the viewport.
func (m *HistoryModel) viewRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Selected returns the currently selected record index.
func (m *HistoryModel) Selected() int {
	return m.selected
}
