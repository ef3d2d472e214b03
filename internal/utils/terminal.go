package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether r is a file attached to an interactive
// terminal. Pipes, regular files and in-memory readers are not.
func IsTerminal(r any) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
