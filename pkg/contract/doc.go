// SPDX-License-Identifier: MPL-2.0

// Package contract implements the contract description language used by
// method manifests.
//
// A contract is declared on a single line:
//
//	run: stdin? arg! --verbose? --out=! stdout! -> [1, 2]
//
// The line starts with the method name followed by a colon. Each remaining
// token declares one facet of the call: stdin/stdout usage, a positional
// argument, a flag, or an advisory exit code. Every stream, argument, and flag
// carries a requiredness sigil: '!' for required, '?' for optional. A flag
// written with '=' before its sigil must be given a value.
//
// Parsing is a pure function from a line of text to a Contract. A manifest is
// a newline-separated collection of such lines, see ParseManifest.
package contract
