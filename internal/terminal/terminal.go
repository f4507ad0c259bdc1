// SPDX-License-Identifier: MPL-2.0

// Package terminal reports how the process's standard streams are connected.
package terminal

import (
	"os"

	"golang.org/x/term"
)

type (
	// FdFile is anything backed by a file descriptor, such as *os.File.
	FdFile interface {
		Fd() uintptr
	}

	// Streams describes the standard streams of the process.
	Streams struct {
		// StdinPiped is true when stdin is not a terminal.
		StdinPiped bool
		// StdoutTerminal is true when stdout is a terminal.
		StdoutTerminal bool
		// StderrTerminal is true when stderr is a terminal.
		StderrTerminal bool
	}
)

// Detect inspects os.Stdin, os.Stdout, and os.Stderr.
func Detect() Streams {
	return DetectFiles(os.Stdin, os.Stdout, os.Stderr)
}

// DetectFiles inspects the given streams. A nil stream counts as not being a
// terminal.
func DetectFiles(stdin, stdout, stderr FdFile) Streams {
	return Streams{
		StdinPiped:     !IsTerminal(stdin),
		StdoutTerminal: IsTerminal(stdout),
		StderrTerminal: IsTerminal(stderr),
	}
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f FdFile) bool {
	if f == nil {
		return false
	}
	if file, ok := f.(*os.File); ok && file == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
