// SPDX-License-Identifier: MPL-2.0

package contract

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned when a line contains text that is not a valid token.
	ErrSyntax = errors.New("invalid contract syntax")
	// ErrMissingName is returned when a contract line has no "<name>:" token.
	ErrMissingName = errors.New("contract has no name")
	// ErrAmbiguousRequiredness is returned when an argument, flag, or stream
	// token lacks its trailing '!' or '?'.
	ErrAmbiguousRequiredness = errors.New("requiredness is not specified")
	// ErrErrorCode is returned when an exit code does not fit in 32 bits.
	ErrErrorCode = errors.New("invalid error code")
)

// ParseError describes where a contract line failed to lex or parse.
// It wraps one of the package sentinels for errors.Is() checks.
type ParseError struct {
	// Pos is the byte offset of the offending text, or -1 when the failure
	// concerns the whole line.
	Pos int
	// Text is the offending source text.
	Text string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q at offset %d", e.Err, e.Text, e.Pos)
}

// Unwrap returns the sentinel describing the failure class.
func (e *ParseError) Unwrap() error { return e.Err }
