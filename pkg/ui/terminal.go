// Package ui contains terminal presentation helpers shared by the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// SetTerminalTitle sets the terminal window title using ANSI escape sequences.
// This works on most modern terminals including Linux terminals, macOS
// Terminal/iTerm2, and Windows Terminal.
//
// The escape sequence is only written when the writer is an interactive
// terminal; piping output to a file or another process leaves it untouched.
func SetTerminalTitle(writer io.Writer, title string) {
	if !IsInteractive(writer) {
		return
	}

	// ANSI escape sequence: ESC ] 0 ; title BEL
	fmt.Fprintf(writer, "\033]0;%s\007", title)
}

// IsInteractive reports whether the writer is attached to a terminal.
func IsInteractive(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
