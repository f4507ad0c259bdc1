// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/irnix/irnix/internal/launcher"
	"github.com/irnix/irnix/pkg/types"
)

// ExitError carries the irnix exit status out of a RunE handler. Err is what
// the error handler renders, usually a *ServiceError.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// childExit passes a method's own non-zero status through as the irnix exit
// status.
func childExit(err *launcher.ChildExitError) *ExitError {
	return &ExitError{Code: types.FromStatus(err.Code), Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("irnix: exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// quiet reports whether the failure belongs to the method. The method has
// already written its own diagnostics, so nothing is rendered.
func (e *ExitError) quiet() bool {
	var childErr *launcher.ChildExitError
	return errors.As(e.Err, &childErr)
}

// exitCode maps the error returned by the command tree to the process exit
// status. Errors that never went through classification, such as cobra's
// unknown command, are structural.
func exitCode(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitStructural
}
