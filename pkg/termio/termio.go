// Package termio holds terminal helpers used around interactive prompts.
package termio

import (
	"os"
	"time"

	"golang.org/x/term"
)

// IsTerminal reports whether f refers to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// ClearStdinBuffer discards input typed ahead of a prompt, so a stray
// newline does not submit a password prompt before the user sees it.
func ClearStdinBuffer() {
	if !IsTerminal(os.Stdin) {
		return
	}

	flushInput(os.Stdin)

	// let the terminal settle before draining what is left
	time.Sleep(10 * time.Millisecond)

	drainInput(os.Stdin)
}
