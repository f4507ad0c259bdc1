// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/irnix/irnix/internal/namespace"
	"github.com/irnix/irnix/pkg/contract"
)

func checkObject(ctx *Context) error {
	obj := ctx.Method.Object
	isDir, err := obj.IsDir()
	if errors.Is(err, fs.ErrNotExist) {
		return &NotObjectError{Path: obj.Path, Err: err}
	}
	if err != nil {
		return err
	}
	if !isDir {
		return &NotObjectError{Path: obj.Path}
	}

	set, err := obj.Contracts()
	if err != nil {
		return err
	}
	ctx.Contracts = set
	return nil
}

func expandInterface(ctx *Context) error {
	iface := ctx.Method.Object
	if !iface.IsInterface() {
		return nil
	}
	target, err := namespace.ExpandInterface(iface)
	if err != nil {
		return err
	}
	ctx.Interface = iface
	ctx.Method.Retarget(target)
	return nil
}

// checkConformance requires every interface contract to equal the target's
// same-named contract and the called method to be declared by the interface.
func checkConformance(ctx *Context) error {
	if ctx.Interface == nil {
		return nil
	}
	target := ctx.Method.Object

	found, err := target.HasManifest()
	if err != nil {
		return err
	}
	if !found {
		return &TargetManifestError{Interface: ctx.Interface.Path, Target: target.Path}
	}
	targetSet, err := target.Contracts()
	if err != nil {
		return err
	}

	for _, name := range ctx.Contracts.Names() {
		want, ok := targetSet.Lookup(name)
		if !ok || !ctx.Contracts[name].Equal(want) {
			return &ContractMismatchError{
				Contract:  name,
				Interface: ctx.Interface.Path,
				Target:    target.Path,
				Missing:   !ok,
			}
		}
	}

	ident := ctx.Method.Ident()
	if _, ok := ctx.Contracts.Lookup(ident); !ok {
		notExposed := &MethodNotExposedError{Method: ident}
		if _, onTarget := targetSet.Lookup(ident); onTarget {
			notExposed.Target = filepath.Join(target.Path, namespace.ManifestName)
		}
		return notExposed
	}

	ctx.Contracts = targetSet
	return nil
}

func selectContract(ctx *Context) error {
	ctx.Contract = nil
	if c, ok := ctx.Contracts.Lookup(ctx.Method.Ident()); ok {
		ctx.Contract = &c
	}
	return nil
}

func checkStdin(ctx *Context) error {
	c := ctx.Contract
	if c == nil {
		return nil
	}
	switch {
	case c.Stdin == contract.StreamRequired && !ctx.Invocation.StdinPiped:
		return &StreamError{Contract: c.Name, Err: ErrStdinRequired}
	case c.Stdin == contract.StreamNone && ctx.Invocation.StdinPiped:
		return &StreamError{Contract: c.Name, Err: ErrStdinUnexpected}
	}
	return nil
}

func checkStdout(ctx *Context) error {
	c := ctx.Contract
	if c == nil {
		return nil
	}
	if c.Stdout == contract.StreamNone && !ctx.Invocation.StdoutTerminal {
		return &StreamError{Contract: c.Name, Err: ErrStdoutUnexpected}
	}
	return nil
}
