package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commutrace/commutrace/internal/store"
)

func makeRecords(n int) []store.Record {
	records := make([]store.Record, 0, n)
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	for i := range n {
		records = append(records, store.Record{
			ID:               fmt.Sprintf("rec-%03d", i),
			Timestamp:        base.Add(time.Duration(i) * time.Hour),
			VehicleType:      "SUV",
			DistanceMiles:    35,
			Efficiency:       23,
			EfficiencyUnit:   "mpg",
			EmissionsPerDay:  29.83,
			EmissionsPerWeek: 149.13,
			EmissionsPerYear: 7754.78,
			EmissionsUnit:    "lbs",
		})
	}
	return records
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHistoryModelNavigation(t *testing.T) {
	m := NewHistoryModel(makeRecords(5))

	assert.Equal(t, 0, m.Selected())

	update := func(msg tea.Msg) {
		model, _ := m.Update(msg)
		var ok bool
		m, ok = model.(*HistoryModel)
		require.True(t, ok)
	}

	update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Selected())

	update(keyRune('j'))
	assert.Equal(t, 2, m.Selected())

	update(keyRune('k'))
	assert.Equal(t, 1, m.Selected())

	update(keyRune('G'))
	assert.Equal(t, 4, m.Selected())

	// Moving past the end stays clamped.
	update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 4, m.Selected())

	update(keyRune('g'))
	assert.Equal(t, 0, m.Selected())

	update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())
}

func TestHistoryModelPagingFollowsViewport(t *testing.T) {
	m := NewHistoryModel(makeRecords(50))

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 13})
	m = model.(*HistoryModel)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = model.(*HistoryModel)
	assert.Equal(t, 10, m.Selected())

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = model.(*HistoryModel)
	assert.Equal(t, 49, m.Selected())

	// The selected row must be inside the rendered window.
	view := m.View()
	assert.Contains(t, view, "50/50")
	assert.Contains(t, view, "> ")
}

func TestHistoryModelQuitKeys(t *testing.T) {
	for _, msg := range []tea.Msg{
		keyRune('q'),
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.KeyMsg{Type: tea.KeyCtrlC},
	} {
		m := NewHistoryModel(makeRecords(1))
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestHistoryModelViewEmpty(t *testing.T) {
	m := NewHistoryModel(nil)
	view := m.View()

	assert.Contains(t, view, "Calculation history")
	assert.Contains(t, view, "no records yet")
}

func TestHistoryModelViewRows(t *testing.T) {
	records := makeRecords(2)
	records[1].VehicleType = "RetiredKey"
	records[1].AssumedLegacyUnits = true

	m := NewHistoryModel(records)
	view := m.View()

	assert.Contains(t, view, "SUV")
	assert.Contains(t, view, "29.83 lbs/day")
	assert.Contains(t, view, "7,754.78 lbs/yr")
	// Unresolved catalog keys and legacy records are marked.
	assert.Contains(t, view, "RetiredKey (?)")
	assert.Contains(t, view, " *")
	assert.Contains(t, view, "1/2")
}
