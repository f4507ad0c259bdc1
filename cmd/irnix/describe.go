// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/irnix/irnix/internal/namespace"
	"github.com/irnix/irnix/internal/validate"
	"github.com/irnix/irnix/pkg/contract"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatTOML = "toml"
)

// methodView is the describe output for one method.
type methodView struct {
	Method    string             `json:"method" toml:"method"`
	Path      string             `json:"path" toml:"path"`
	Object    string             `json:"object" toml:"object"`
	Interface string             `json:"interface,omitempty" toml:"interface,omitempty"`
	Contract  *contract.Contract `json:"contract,omitempty" toml:"contract,omitempty"`
}

// newDescribeCommand creates the `irnix describe` command.
func newDescribeCommand(app *App) *cobra.Command {
	var format string

	describeCmd := &cobra.Command{
		Use:   "describe <object.method>",
		Short: "Show where a method resolves and the contract that governs it",
		Long: `Resolve a method without running it and print the executable path, the
object (after interface expansion) and the contract calls are checked
against. The output format is text, json or toml.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completeMethods,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runDescribe(cmd.Context(), args[0], format)
		},
	}

	describeCmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or toml")
	_ = describeCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatText, formatJSON, formatTOML}, cobra.ShellCompDirectiveNoFileComp))

	return describeCmd
}

func (a *App) runDescribe(ctx context.Context, name, format string) error {
	switch format {
	case formatText, formatJSON, formatTOML:
	default:
		return fmt.Errorf("invalid format %q: must be one of %s, %s, %s", format, formatText, formatJSON, formatTOML)
	}

	if _, err := namespace.ParseMethodName(name); err != nil {
		return a.fail(err)
	}
	resolver, err := a.resolver(ctx)
	if err != nil {
		return err
	}
	method, err := resolver.Resolve(name)
	if err != nil {
		return a.fail(err)
	}

	vctx := validate.NewContext(method, validate.Invocation{})
	if err := validate.Run(vctx, validate.ResolutionStages()); err != nil {
		if errors.Is(err, validate.ErrNotObject) {
			return a.failUnknown(ctx, name, err)
		}
		return a.fail(err)
	}

	view := methodView{
		Method:   method.Name.String(),
		Path:     method.Path,
		Object:   method.Object.Path,
		Contract: vctx.Contract,
	}
	if vctx.Interface != nil {
		view.Interface = vctx.Interface.Path
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case formatTOML:
		return toml.NewEncoder(a.stdout).Encode(view)
	default:
		writeMethodView(a.stdout, view)
		return nil
	}
}

func writeMethodView(w io.Writer, view methodView) {
	fmt.Fprintln(w, TitleStyle.Render(view.Method))
	row := func(key, value string) {
		fmt.Fprintf(w, "  %s %s\n", CmdStyle.Render(fmt.Sprintf("%-10s", key+":")), value)
	}
	row("path", view.Path)
	row("object", view.Object)
	if view.Interface != "" {
		row("interface", view.Interface)
	}
	if view.Contract == nil {
		row("contract", SubtitleStyle.Render("(none, any call is accepted)"))
		return
	}
	row("contract", SuccessStyle.Render(view.Contract.String()))
	row("args", fmt.Sprintf("%d required, %d optional", view.Contract.RequiredArgs(), view.Contract.OptionalArgs()))
	row("stdin", view.Contract.Stdin.String())
	row("stdout", view.Contract.Stdout.String())
}
