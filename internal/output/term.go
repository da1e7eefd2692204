package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Spinners and
// colorized previews are skipped when output is piped.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
