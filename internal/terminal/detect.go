// Package terminal reports whether the process is attached to an interactive
// terminal. The result gates the uninstall confirmation prompt: without a TTY
// the tool never blocks waiting for input.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
