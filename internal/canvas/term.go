package canvas

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	terminalWidthBackup  = 80
	terminalHeightBackup = 24
)

// TerminalSize returns the size of stdout in cells, or 80x24 when it is not a terminal.
func TerminalSize() (cols, rows int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return terminalWidthBackup, terminalHeightBackup
	}
	return width, height
}

// ShouldUseColor reports whether w should receive ANSI colors.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
