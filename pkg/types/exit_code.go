// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess means the call completed.
	ExitSuccess ExitCode = 0
	// ExitStructural covers names that do not lead to a method: malformed
	// names, missing objects, and methods an interface does not expose. It is
	// also the fallback for command-line errors.
	ExitStructural ExitCode = 1
	// ExitUsage covers calls that violate a method contract.
	ExitUsage ExitCode = 2
	// ExitConfiguration covers broken manifests, malformed or nonconforming
	// interfaces, and an invalid config file.
	ExitConfiguration ExitCode = 3
	// ExitEnvironment covers I/O failures while reading the namespace.
	ExitEnvironment ExitCode = 4
	// ExitCannotExecute matches the shell convention for a file that exists
	// but could not be executed.
	ExitCannotExecute ExitCode = 126
	// ExitNotFound matches the shell convention for a missing executable.
	ExitNotFound ExitCode = 127
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// FromStatus converts a child process status into an ExitCode. Statuses
// outside 0-255, such as the -1 reported for a signaled child, become
// ExitStructural so that a failure is never reported as success.
func FromStatus(status int) ExitCode {
	c := ExitCode(status)
	if c.Validate() != nil {
		return ExitStructural
	}
	return c
}

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
