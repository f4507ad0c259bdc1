// SPDX-License-Identifier: MPL-2.0

package contract

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// StreamNone means the method does not use the stream.
	StreamNone Stream = iota
	// StreamOptional means the method may use the stream.
	StreamOptional
	// StreamRequired means the method needs the stream.
	StreamRequired
)

type (
	// Stream describes how a method uses stdin or stdout.
	Stream int

	// Arg is one positional argument slot. Argument names in a declaration are
	// documentation only; two contracts with differently named but equally
	// required arguments are equal.
	Arg struct {
		Required bool `json:"required" toml:"required"`
	}

	// Flag is one declared flag. Name keeps its leading dash(es).
	Flag struct {
		Name string `json:"name" toml:"name"`
		// Required means the flag must appear in every call.
		Required bool `json:"required" toml:"required"`
		// RequiredValue means the flag must be followed by a value, either
		// inline ("--out=x") or as the next token.
		RequiredValue bool `json:"required_value" toml:"required_value"`
	}

	// Contract is the declared interface of one method.
	Contract struct {
		Name   string          `json:"name" toml:"name"`
		Stdin  Stream          `json:"stdin" toml:"stdin"`
		Stdout Stream          `json:"stdout" toml:"stdout"`
		Args   []Arg           `json:"args" toml:"args"`
		Flags  map[string]Flag `json:"flags" toml:"flags"`
		// ErrorCodes lists the exit codes the method documents. They are
		// advisory and never enforced.
		ErrorCodes []uint32 `json:"error_codes" toml:"error_codes"`
	}

	// Set maps contract names to contracts, as loaded from one manifest.
	Set map[string]Contract
)

// String returns "none", "optional" or "required".
func (s Stream) String() string {
	switch s {
	case StreamOptional:
		return "optional"
	case StreamRequired:
		return "required"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Stream) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stream) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*s = StreamNone
	case "optional":
		*s = StreamOptional
	case "required":
		*s = StreamRequired
	default:
		return fmt.Errorf("unknown stream mode %q", text)
	}
	return nil
}

func (s Stream) sigil() byte {
	if s == StreamRequired {
		return requiredMark
	}
	return optionalMark
}

// Equal reports whether two contracts are structurally identical: same name,
// stream modes, argument sequence, flag set, and error codes.
func (c Contract) Equal(other Contract) bool {
	return c.Name == other.Name &&
		c.Stdin == other.Stdin &&
		c.Stdout == other.Stdout &&
		slices.Equal(c.Args, other.Args) &&
		maps.Equal(c.Flags, other.Flags) &&
		slices.Equal(c.ErrorCodes, other.ErrorCodes)
}

// RequiredArgs returns how many positional arguments must be supplied.
func (c Contract) RequiredArgs() int {
	n := 0
	for _, a := range c.Args {
		if a.Required {
			n++
		}
	}
	return n
}

// OptionalArgs returns how many positional arguments may be omitted.
func (c Contract) OptionalArgs() int {
	return len(c.Args) - c.RequiredArgs()
}

// RequiredFlags returns the names of flags that must be supplied, sorted.
func (c Contract) RequiredFlags() []string {
	var names []string
	for name, f := range c.Flags {
		if f.Required {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// FlagNames returns all declared flag names, sorted.
func (c Contract) FlagNames() []string {
	names := maps.Keys(c.Flags)
	sort.Strings(names)
	return names
}

// String renders the contract as a declaration line. Arguments are named
// arg1..argN and flags are sorted, so the output is canonical and parses back
// to an equal contract.
func (c Contract) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte(':')
	if c.Stdin != StreamNone {
		sb.WriteString(" " + stdinWord)
		sb.WriteByte(c.Stdin.sigil())
	}
	for i, a := range c.Args {
		fmt.Fprintf(&sb, " arg%d", i+1)
		sb.WriteByte(sigilOf(a.Required))
	}
	for _, name := range c.FlagNames() {
		sb.WriteString(" " + c.Flags[name].String())
	}
	if c.Stdout != StreamNone {
		sb.WriteString(" " + stdoutWord)
		sb.WriteByte(c.Stdout.sigil())
	}
	if len(c.ErrorCodes) > 0 {
		codes := make([]string, len(c.ErrorCodes))
		for i, code := range c.ErrorCodes {
			codes[i] = fmt.Sprint(code)
		}
		sb.WriteString(" -> [" + strings.Join(codes, ", ") + "]")
	}
	return sb.String()
}

// String renders the flag as it is declared, e.g. "--out=!".
func (f Flag) String() string {
	s := f.Name
	if f.RequiredValue {
		s += string(valueMark)
	}
	return s + string(sigilOf(f.Required))
}

// Names returns the contract names of the set, sorted.
func (s Set) Names() []string {
	names := maps.Keys(s)
	sort.Strings(names)
	return names
}

// Lookup returns the named contract.
func (s Set) Lookup(name string) (Contract, bool) {
	c, ok := s[name]
	return c, ok
}

func sigilOf(required bool) byte {
	if required {
		return requiredMark
	}
	return optionalMark
}
