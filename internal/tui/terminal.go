// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"io"

	"golang.org/x/term"
)

const (
	// MarkdownStyleDark is the glamour style for dark backgrounds.
	MarkdownStyleDark = "dark"
	// MarkdownStyleLight is the glamour style for light backgrounds.
	MarkdownStyleLight = "light"
	// MarkdownStylePlain is the glamour style without escape sequences.
	MarkdownStylePlain = "notty"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// MarkdownStyle picks the glamour style for w. scheme is "dark", "light" or
// "auto"; anything not written to a terminal is rendered plain.
func MarkdownStyle(w io.Writer, scheme string) string {
	if !IsTerminal(w) {
		return MarkdownStylePlain
	}
	if scheme == MarkdownStyleLight {
		return MarkdownStyleLight
	}
	return MarkdownStyleDark
}
