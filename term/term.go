// Package term provides the terminal chrome used by the CLI: terminal
// detection, a pager and a progress spinner.
package term

import (
	"io"
	"os"
	"strconv"

	xterm "golang.org/x/term"
)

// DefaultWidth is assumed when the width cannot be determined.
const DefaultWidth = 80

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}

// Width returns the column width of the terminal behind w. It falls back to
// the COLUMNS environment variable, then DefaultWidth.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := xterm.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if width, err := strconv.Atoi(col); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}
