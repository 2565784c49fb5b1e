package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/commutrace/commutrace/internal/tui"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt.
	Accepted bool
	// Cancelled is true if input ended with a read error.
	Cancelled bool
}

// Confirm asks a y/N question and reads one line of input.
// It returns immediately with Accepted=false in non-interactive
// (non-TTY) environments, and defaults to "No" on empty input.
// Valid acceptance inputs: "y", "yes" in any case.
func Confirm(writer io.Writer, reader io.Reader, question string) PromptResult {
	if !tui.IsTTY() {
		return PromptResult{Accepted: false}
	}
	return readConfirm(writer, reader, question)
}

// readConfirm prints the question and interprets one line of input.
func readConfirm(writer io.Writer, reader io.Reader, question string) PromptResult {
	fmt.Fprintf(writer, "? %s [y/N] ", question)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF without error: treat as decline.
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
