// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/irnix/irnix/internal/launcher"
	"github.com/irnix/irnix/internal/namespace"
	"github.com/irnix/irnix/internal/validate"

	"github.com/spf13/cobra"
)

// execRequest captures one method call as an immutable value.
type execRequest struct {
	// Name is the dotted method name, e.g. "io.write".
	Name string
	// Args are passed to the method untouched.
	Args []string
	// DryRun prints the command instead of running it.
	DryRun bool
}

// newExecCommand creates the `irnix exec` command.
func newExecCommand(app *App) *cobra.Command {
	var dryRun bool

	execCmd := &cobra.Command{
		Use:     "exec <object.method> [args...]",
		Aliases: []string{"e"},
		Short:   "Validate a call against its contract and run the method",
		Long: `Validate a call against its contract and run the method.

Everything after the method name is passed to the method verbatim, flags
included. irnix flags therefore go before the method name:

  irnix -v exec io.write --mode=append out.txt`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: app.completeMethods,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runExec(cmd.Context(), execRequest{Name: args[0], Args: args[1:], DryRun: dryRun})
		},
	}

	execCmd.Flags().SetInterspersed(false)
	execCmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the call and print the command instead of running it")

	return execCmd
}

// runExec resolves, validates and launches one method call. A malformed name
// is rejected before the config file is read. On Unix a successful launch
// does not return.
func (a *App) runExec(ctx context.Context, req execRequest) error {
	if _, err := namespace.ParseMethodName(req.Name); err != nil {
		return a.fail(err)
	}
	resolver, err := a.resolver(ctx)
	if err != nil {
		return err
	}

	method, err := resolver.Resolve(req.Name)
	if err != nil {
		return a.fail(err)
	}

	streams := a.Streams()
	vctx := validate.NewContext(method, validate.Invocation{
		Args:           req.Args,
		StdinPiped:     streams.StdinPiped,
		StdoutTerminal: streams.StdoutTerminal,
	})
	if err := validate.Run(vctx, validate.DefaultStages()); err != nil {
		if errors.Is(err, validate.ErrNotObject) {
			return a.failUnknown(ctx, req.Name, err)
		}
		return a.fail(err)
	}

	command := launcher.Command{Path: method.Path, Args: req.Args, Env: a.Environ()}
	if req.DryRun {
		fmt.Fprintln(a.stdout, command.String())
		return nil
	}

	slog.Debug("launching method", "method", req.Name, "path", method.Path)
	if err := a.Exec(command); err != nil {
		var childErr *launcher.ChildExitError
		if errors.As(err, &childErr) {
			return childExit(childErr)
		}
		if errors.Is(err, fs.ErrNotExist) {
			return a.failUnknown(ctx, req.Name, err)
		}
		return a.fail(err)
	}
	return nil
}

// completeMethods completes the method name argument from the namespace.
func (a *App) completeMethods(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	names, err := a.listMethods(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	matches := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
