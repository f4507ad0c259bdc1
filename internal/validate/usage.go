// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"strings"

	"github.com/irnix/irnix/pkg/contract"
)

func checkUsage(ctx *Context) error {
	if ctx.Contract == nil {
		return nil
	}
	return CheckArgs(*ctx.Contract, ctx.Invocation.Args)
}

// CheckArgs validates caller arguments against c.
//
// Any argument starting with '-' is a flag; "--name=value" carries its value
// inline. A flag declared with a required value and given without one
// consumes the next argument as its value. Every other argument is
// positional. A flag appearing while a value is still awaited stops the scan
// and fails.
func CheckArgs(c contract.Contract, args []string) error {
	used := make(map[string]struct{})
	awaiting := ""
	positional := 0

	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			if awaiting != "" {
				break
			}
			name, _, inline := strings.Cut(arg, "=")
			f, ok := c.Flags[name]
			if !ok {
				return &UsageError{Contract: c.Name, Flag: name, Err: ErrUnknownFlag}
			}
			used[name] = struct{}{}
			if f.RequiredValue && !inline {
				awaiting = name
			}
			continue
		}
		if awaiting == "" {
			positional++
		}
		awaiting = ""
	}

	if awaiting != "" {
		return &UsageError{Contract: c.Name, Flag: awaiting, Err: ErrFlagValueMissing}
	}

	required, optional := c.RequiredArgs(), c.OptionalArgs()
	switch {
	case positional < required:
		return &UsageError{Contract: c.Name, Given: positional, Required: required, Optional: optional, Err: ErrTooFewArgs}
	case positional > len(c.Args):
		return &UsageError{Contract: c.Name, Given: positional, Required: required, Optional: optional, Err: ErrTooManyArgs}
	}

	for _, name := range c.RequiredFlags() {
		if _, ok := used[name]; !ok {
			return &UsageError{Contract: c.Name, Flag: name, Err: ErrRequiredFlagMissing}
		}
	}
	return nil
}
