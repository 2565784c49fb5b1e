package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaceModelCompletesOnDone(t *testing.T) {
	m := NewPaceModel(PaceDelay)
	require.False(t, m.Done())

	model, cmd := m.Update(paceDoneMsg{})
	m = model.(*PaceModel)

	assert.True(t, m.Done())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestPaceModelIgnoresKeys(t *testing.T) {
	m := NewPaceModel(PaceDelay)

	// Keystrokes must not cancel the pacing window.
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = model.(*PaceModel)

	assert.Nil(t, cmd)
	assert.False(t, m.Done())
	assert.Contains(t, m.View(), "calculating")
}

func TestPaceModelInitSchedulesDone(t *testing.T) {
	m := NewPaceModel(10 * time.Millisecond)
	assert.NotNil(t, m.Init())
}

func TestPaceDelayIsFixed(t *testing.T) {
	assert.Equal(t, 800*time.Millisecond, PaceDelay)
}
