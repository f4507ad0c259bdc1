// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// The catalog maps each failure class of a method call (malformed names,
// manifest errors, interface problems, usage violations, exec failures) to a
// Markdown explanation rendered with glamour, and ActionableError carries the
// operation, resource and suggestions for a single failure.
package issue
