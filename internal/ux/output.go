package ux

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color helpers. They are emptied by DisableColor.
var (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// DisableColor turns every color helper into an empty string.
func DisableColor() {
	Reset, Bold, Dim, Red, Green, Yellow, Cyan = "", "", "", "", "", "", ""
}

// ConfigureColor disables color when forced off or when f is not a terminal.
func ConfigureColor(f *os.File, off bool) {
	if off || !IsTerminal(f) {
		DisableColor()
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
