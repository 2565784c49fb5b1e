// Package tui contains the interactive terminal views: the history
// browser, the calculation result card and the pacing spinner.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Shared color palette.
const (
	ColorHeader   = lipgloss.Color("39")  // blue
	ColorLabel    = lipgloss.Color("245") // gray
	ColorValue    = lipgloss.Color("252") // near-white
	ColorOK       = lipgloss.Color("42")  // green
	ColorWarning  = lipgloss.Color("214") // orange
	ColorDanger   = lipgloss.Color("196") // red
	ColorMuted    = lipgloss.Color("240") // dark gray
	ColorSelected = lipgloss.Color("229") // pale yellow
)

// IsTTY reports whether stdout is attached to a terminal.
// Prompts and pacing are skipped in non-interactive environments.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
