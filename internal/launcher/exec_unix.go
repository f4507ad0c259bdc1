// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import (
	"log/slog"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process with c. It returns only on failure.
func Exec(c Command) error {
	slog.Debug("exec", "command", c.String())
	if err := unix.Exec(c.Path, c.Argv(), c.Env); err != nil {
		return &ExecError{Path: c.Path, Err: err}
	}
	return nil
}
