// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/irnix/irnix/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the command tree around app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "irnix",
		Short: "Run namespace methods checked against their contracts",
		Long: TitleStyle.Render("irnix") + SubtitleStyle.Render(" - contract-checked method execution") + `

irnix resolves a dotted method name against a directory namespace, checks
the call against the contract declared in the object's .self manifest, and
then replaces itself with the method executable.

` + SubtitleStyle.Render("Namespace:") + `
  io.write        runs <namespace>/io/write
  __io__.write    runs write on the object linked from the __io__ interface

` + SubtitleStyle.Render("Examples:") + `
  irnix methods                      List every callable method
  irnix describe io.write            Show the contract of io.write
  echo hi | irnix exec io.write out  Validate and run io.write
  irnix exec --dry-run io.read path  Validate and print the command`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setVerbose(app.logger, app.flags.verbose)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&app.flags.namespace, "namespace", "n", "", "namespace root (default $IRNIX_NAMESPACE, then ~/.local/share/irnix)")
	pf.StringVar(&app.flags.configFile, "config", "", "config file (default is $HOME/.config/irnix/config.cue)")
	pf.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newExecCommand(app),
		newMethodsCommand(app),
		newDescribeCommand(app),
		newConfigCommand(app),
		newCompletionCommand(),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs irnix with the process arguments and exits with the
// resulting status. It only returns when no exec took place.
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), err)
		os.Exit(int(types.ExitStructural))
	}
	os.Exit(int(run(context.Background(), app, os.Args[1:])))
}

// run executes the command tree for args and returns the exit status.
func run(ctx context.Context, app *App, args []string) types.ExitCode {
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	return exitCode(err)
}

// handleError renders errors that reach fang. Service errors carry their own
// styled message and issue entry; a method's own failure is left to the
// method, which has already reported it.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.quiet() {
		return
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(w, svcErr, a.stylePath())
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
