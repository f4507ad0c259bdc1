// SPDX-License-Identifier: MPL-2.0

// Package launcher hands control to a validated method executable.
//
// On Unix the current process image is replaced, so the method inherits the
// process id, environment, and standard streams, and a successful Exec never
// returns. Elsewhere the method runs as a child whose exit status is passed
// through.
package launcher

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ErrExec is returned when the executable cannot be started.
var ErrExec = errors.New("exec failed")

type (
	// Command is a fully resolved method call.
	Command struct {
		// Path is the executable to run.
		Path string
		// Args are passed after argv[0].
		Args []string
		// Env is the environment, in "KEY=value" form.
		Env []string
	}

	// ExecError reports a failed exec.
	ExecError struct {
		Path string
		Err  error
	}

	// ChildExitError carries the exit status of a method run as a child
	// process.
	ChildExitError struct {
		Code int
	}
)

// Argv returns the argument vector, starting with the executable path.
func (c Command) Argv() []string {
	return append([]string{c.Path}, c.Args...)
}

// String renders the command as a bash-quoted line.
func (c Command) String() string {
	argv := c.Argv()
	words := make([]string, len(argv))
	for i, arg := range argv {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			quoted = fmt.Sprintf("%q", arg)
		}
		words[i] = quoted
	}
	return strings.Join(words, " ")
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrExec, e.Path, e.Err)
}

// Unwrap returns ErrExec and the operating system error.
func (e *ExecError) Unwrap() []error { return []error{ErrExec, e.Err} }

// Error implements the error interface.
func (e *ChildExitError) Error() string {
	return fmt.Sprintf("method exited with status %d", e.Code)
}
