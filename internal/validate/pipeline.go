// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"log/slog"

	"github.com/irnix/irnix/internal/namespace"
	"github.com/irnix/irnix/pkg/contract"
)

type (
	// Invocation is the concrete call being validated.
	Invocation struct {
		// Args are the caller's arguments after the method name.
		Args []string
		// StdinPiped is true when stdin is not a terminal.
		StdinPiped bool
		// StdoutTerminal is true when stdout is a terminal.
		StdoutTerminal bool
	}

	// Context is the state shared by all stages of one validation run.
	Context struct {
		Method     *namespace.Method
		Invocation Invocation

		// Interface is the interface object the call went through, if any.
		// Method.Object is the linked object once expansion has run.
		Interface *namespace.Object
		// Contracts are the contracts governing the method's object.
		Contracts contract.Set
		// Contract is the contract of the called method, nil when the object
		// declares none for it.
		Contract *contract.Contract
	}

	// Stage is one named validation step.
	Stage struct {
		Name string
		Run  func(*Context) error
	}
)

// NewContext starts a validation run for m.
func NewContext(m *namespace.Method, inv Invocation) *Context {
	return &Context{Method: m, Invocation: inv}
}

// Run executes stages in order and returns the first failure.
func Run(ctx *Context, stages []Stage) error {
	for _, s := range stages {
		slog.Debug("validation stage", "stage", s.Name, "method", ctx.Method.Name.String())
		if err := s.Run(ctx); err != nil {
			slog.Debug("validation stage failed", "stage", s.Name, "error", err)
			return err
		}
	}
	return nil
}

// ResolutionStages locate the object, expand interfaces, and select the
// governing contract.
func ResolutionStages() []Stage {
	return []Stage{
		{Name: "object", Run: checkObject},
		{Name: "interface", Run: expandInterface},
		{Name: "conformance", Run: checkConformance},
		{Name: "contract", Run: selectContract},
	}
}

// InvocationStages check arguments, flags, and standard streams against the
// selected contract. They pass trivially when no contract applies.
func InvocationStages() []Stage {
	return []Stage{
		{Name: "usage", Run: checkUsage},
		{Name: "stdin", Run: checkStdin},
		{Name: "stdout", Run: checkStdout},
	}
}

// DefaultStages is the full validation sequence for an exec.
func DefaultStages() []Stage {
	return append(ResolutionStages(), InvocationStages()...)
}
