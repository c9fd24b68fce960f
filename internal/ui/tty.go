package ui

import (
	"os"

	"golang.org/x/term"
)

// CanPrompt reports whether interactive prompts can run: both stdin and
// stdout must be terminals. Handlers gate all prompting on this.
func CanPrompt() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
