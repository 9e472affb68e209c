// Package terminal restores the controlling terminal after an abnormal exit
// and reports whether a descriptor is interactive.
//
// Drawing and input are handled by tcell; this package only covers the
// cases where tcell's own Fini cannot run, such as a panic mid-frame.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var (
	seqMouseMotionOff = []byte("\x1b[?1003l")
	seqMouseDragOff   = []byte("\x1b[?1002l")
	seqMouseClickOff  = []byte("\x1b[?1000l")
	seqMouseSGROff    = []byte("\x1b[?1006l")
	seqCursorShow     = []byte("\x1b[?25h")
	seqAltScreenExit  = []byte("\x1b[?1049l")
	seqSGR0           = []byte("\x1b[0m")
	seqAutoWrapOn     = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore the terminal to a sane state
// Call this from panic recovery when the screen's Fini cannot be called
func EmergencyReset(w io.Writer) {
	w.Write(seqMouseMotionOff)
	w.Write(seqMouseDragOff)
	w.Write(seqMouseClickOff)
	w.Write(seqMouseSGROff)

	w.Write(seqCursorShow)
	w.Write(seqAltScreenExit)
	w.Write(seqSGR0)
	w.Write(seqAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Interactive reports whether both stdin and stdout are terminals
func Interactive() bool {
	return IsTerminal(os.Stdin.Fd()) && IsTerminal(os.Stdout.Fd())
}
