// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrNotObject is returned when the owning object is missing or is not a
	// directory.
	ErrNotObject = errors.New("object must be a directory")
	// ErrContractMismatch is returned when an interface contract differs from
	// the same-named contract of its target.
	ErrContractMismatch = errors.New("interface contract does not match target")
	// ErrTargetManifest is returned when an interface links to an object
	// without a manifest.
	ErrTargetManifest = errors.New("interface target has no contracts")
	// ErrMethodNotExposed is returned when an interface does not declare the
	// called method.
	ErrMethodNotExposed = errors.New("method is not specified in the interface contract")

	// ErrUnknownFlag is returned for a flag the contract does not declare.
	ErrUnknownFlag = errors.New("flag is not in the contract")
	// ErrFlagValueMissing is returned when a flag that needs a value has none.
	ErrFlagValueMissing = errors.New("flag value is missing")
	// ErrTooFewArgs is returned when fewer positional arguments are given
	// than the contract requires.
	ErrTooFewArgs = errors.New("too few arguments")
	// ErrTooManyArgs is returned when more positional arguments are given than
	// the contract declares.
	ErrTooManyArgs = errors.New("too many arguments")
	// ErrRequiredFlagMissing is returned when a required flag is absent.
	ErrRequiredFlagMissing = errors.New("required flag is missing")

	// ErrStdinRequired is returned when the contract requires stdin and none
	// is piped.
	ErrStdinRequired = errors.New("stdin is required")
	// ErrStdinUnexpected is returned when stdin is piped to a method that does
	// not read it.
	ErrStdinUnexpected = errors.New("stdin is not accepted")
	// ErrStdoutUnexpected is returned when stdout is redirected for a method
	// that does not write it.
	ErrStdoutUnexpected = errors.New("stdout is not produced")
)

type (
	// NotObjectError reports the path that should have been an object.
	NotObjectError struct {
		Path string
		Err  error
	}

	// ContractMismatchError reports an interface contract that is not an
	// exact copy of the target's.
	ContractMismatchError struct {
		Contract  string
		Interface string
		Target    string
		// Missing is true when the target does not declare the contract at all.
		Missing bool
	}

	// TargetManifestError reports an interface target without a manifest.
	TargetManifestError struct {
		Interface string
		Target    string
	}

	// MethodNotExposedError reports a call through an interface to a method
	// the interface does not declare.
	MethodNotExposedError struct {
		Method string
		// Target is the manifest of the linked object when that object does
		// declare the method, and empty otherwise.
		Target string
	}

	// UsageError reports a flag or argument that violates the contract.
	UsageError struct {
		Contract string
		Flag     string
		Given    int
		Required int
		Optional int
		Err      error
	}

	// StreamError reports a standard stream used against the contract.
	StreamError struct {
		Contract string
		Err      error
	}
)

// Error implements the error interface.
func (e *NotObjectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrNotObject, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrNotObject, e.Path)
}

// Unwrap returns ErrNotObject and the underlying cause, if any.
func (e *NotObjectError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNotObject}
	}
	return []error{ErrNotObject, e.Err}
}

// Error implements the error interface.
func (e *ContractMismatchError) Error() string {
	if e.Missing {
		return fmt.Sprintf("the enumeration of interface contracts must be a subset of the enumeration of contracts of the object referenced by the interface: %q is declared by %s but not by %s",
			e.Contract, e.Interface, e.Target)
	}
	return fmt.Sprintf("the enumeration of interface contracts must be a subset of the enumeration of contracts of the object referenced by the interface: %q differs between %s and %s",
		e.Contract, e.Interface, e.Target)
}

// Unwrap returns ErrContractMismatch for errors.Is() compatibility.
func (e *ContractMismatchError) Unwrap() error { return ErrContractMismatch }

// Error implements the error interface.
func (e *TargetManifestError) Error() string {
	return fmt.Sprintf("%s: interface %s links to %s", ErrTargetManifest, e.Interface, e.Target)
}

// Unwrap returns ErrTargetManifest for errors.Is() compatibility.
func (e *TargetManifestError) Unwrap() error { return ErrTargetManifest }

// Error implements the error interface.
func (e *MethodNotExposedError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("the called method %q is not specified in the interface contract. However, it is specified in the objects contract: %s",
			e.Method, e.Target)
	}
	return fmt.Sprintf("the called method %q is not specified in the interface contract", e.Method)
}

// Unwrap returns ErrMethodNotExposed for errors.Is() compatibility.
func (e *MethodNotExposedError) Unwrap() error { return ErrMethodNotExposed }

// DefinedOnTarget reports whether the linked object declares the method.
func (e *MethodNotExposedError) DefinedOnTarget() bool { return e.Target != "" }

// Error implements the error interface.
func (e *UsageError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownFlag):
		return fmt.Sprintf("a flag was provided that is not in the contract %q: %s", e.Contract, e.Flag)
	case errors.Is(e.Err, ErrFlagValueMissing):
		return fmt.Sprintf("the flag %q must have a value, which is not provided", e.Flag)
	case errors.Is(e.Err, ErrRequiredFlagMissing):
		return fmt.Sprintf("one required flag is missing: %s", e.Flag)
	case errors.Is(e.Err, ErrTooFewArgs):
		return fmt.Sprintf("the arguments provided (%d) are fewer than required by the contract. The contract requires %d arguments and %d optional ones",
			e.Given, e.Required, e.Optional)
	case errors.Is(e.Err, ErrTooManyArgs):
		return fmt.Sprintf("too many arguments (%d). The contract requires %d arguments and %d optional ones",
			e.Given, e.Required, e.Optional)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the sentinel describing the violation.
func (e *UsageError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *StreamError) Error() string {
	switch {
	case errors.Is(e.Err, ErrStdinRequired):
		return fmt.Sprintf("the contract %q requires stdin, which is not provided", e.Contract)
	case errors.Is(e.Err, ErrStdinUnexpected):
		return fmt.Sprintf("the contract %q does not imply functionality for stdin, but stdin was passed", e.Contract)
	case errors.Is(e.Err, ErrStdoutUnexpected):
		return fmt.Sprintf("the contract %q does not imply functionality for stdout, but stdout is used in pipeline", e.Contract)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the sentinel describing the violation.
func (e *StreamError) Unwrap() error { return e.Err }
