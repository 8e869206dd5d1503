package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
)

// isNotTerminal defines if the output is going into terminal or not.
// It's dynamically set to false or true based on the stdout's file
// descriptor referring to a terminal or not.
var isNotTerminal = os.Getenv("TERM") == "dumb" ||
	(!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()))

// isInteractive reports whether both stdin and stdout are attached to a
// terminal, so prompts can be shown.
func isInteractive() bool {
	if isNotTerminal {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
