// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package launcher

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
)

// Exec runs c as a child with inherited standard streams. A non-zero exit is
// reported as *ChildExitError.
func Exec(c Command) error {
	slog.Debug("exec", "command", c.String())
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Env = c.Env
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ChildExitError{Code: exitErr.ExitCode()}
	}
	if err != nil {
		return &ExecError{Path: c.Path, Err: err}
	}
	return nil
}
