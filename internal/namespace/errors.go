// SPDX-License-Identifier: MPL-2.0

package namespace

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedName is returned when an invocation name does not match
	// segment(.segment)+.
	ErrMalformedName = errors.New("malformed method name")
	// ErrManifest is returned when a .self manifest fails to parse.
	ErrManifest = errors.New("invalid contract manifest")
	// ErrInterfaceLayout is returned when an interface directory is not
	// exactly a manifest plus one link to a directory.
	ErrInterfaceLayout = errors.New("invalid interface layout")
	// ErrInterfaceManifest is returned when an interface has no manifest.
	ErrInterfaceManifest = errors.New("interface must have a contract")
	// ErrLinkCycle is returned when following symbolic links loops.
	ErrLinkCycle = errors.New("symbolic link cycle")
)

type (
	// MalformedNameError reports an invocation name rejected by the grammar.
	MalformedNameError struct {
		Name string
	}

	// ManifestError reports a manifest that failed to parse. Err carries the
	// line number and the contract parse error.
	ManifestError struct {
		Path string
		Err  error
	}

	// InterfaceLayoutError reports why an interface directory is malformed.
	InterfaceLayoutError struct {
		Path   string
		Reason string
		Err    error
	}

	// InterfaceManifestError reports an interface or interface target
	// directory without a manifest.
	InterfaceManifestError struct {
		Path string
	}

	// LinkCycleError reports the link whose chain loops.
	LinkCycleError struct {
		Path string
	}
)

// Error implements the error interface.
func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("%s %q: expected object.method", ErrMalformedName, e.Name)
}

// Unwrap returns ErrMalformedName for errors.Is() compatibility.
func (e *MalformedNameError) Unwrap() error { return ErrMalformedName }

// Error implements the error interface.
func (e *ManifestError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrManifest, e.Path, e.Err)
}

// Unwrap returns both ErrManifest and the parse error so errors.Is() matches
// either.
func (e *ManifestError) Unwrap() []error { return []error{ErrManifest, e.Err} }

// Error implements the error interface.
func (e *InterfaceLayoutError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", ErrInterfaceLayout, e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrInterfaceLayout and the underlying cause, if any.
func (e *InterfaceLayoutError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInterfaceLayout}
	}
	return []error{ErrInterfaceLayout, e.Err}
}

// Error implements the error interface.
func (e *InterfaceManifestError) Error() string {
	return fmt.Sprintf("%s: %s has no %s", ErrInterfaceManifest, e.Path, ManifestName)
}

// Unwrap returns ErrInterfaceManifest for errors.Is() compatibility.
func (e *InterfaceManifestError) Unwrap() error { return ErrInterfaceManifest }

// Error implements the error interface.
func (e *LinkCycleError) Error() string {
	return fmt.Sprintf("%s at %s", ErrLinkCycle, e.Path)
}

// Unwrap returns ErrLinkCycle for errors.Is() compatibility.
func (e *LinkCycleError) Unwrap() error { return ErrLinkCycle }
