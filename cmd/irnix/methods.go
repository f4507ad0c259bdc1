// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/irnix/irnix/internal/namespace"
	"github.com/irnix/irnix/internal/watch"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

// newMethodsCommand creates the `irnix methods` command.
func newMethodsCommand(app *App) *cobra.Command {
	var watchTree bool

	methodsCmd := &cobra.Command{
		Use:     "methods [prefix|pattern]",
		Aliases: []string{"ls"},
		Short:   "List the methods in the namespace",
		Long: `List every method in the namespace as object.method, one per line.

Objects are walked recursively and linked directories are followed. An
interface lists the methods its .self manifest declares.

An optional filter keeps only some names. A plain filter is a prefix. A
filter with glob characters is matched segment by segment, where "*"
stays within one segment and "**" spans several:

  irnix methods io.          methods of io
  irnix methods '*.write'    write on any top-level object
  irnix methods '**.{get,put}'

With --watch the list is printed again whenever the namespace changes,
until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			if watchTree {
				return app.watchMethods(cmd.Context(), filter)
			}
			return app.runMethods(cmd.Context(), filter)
		},
	}
	methodsCmd.Flags().BoolVarP(&watchTree, "watch", "w", false, "print the list again whenever the namespace changes")
	return methodsCmd
}

func (a *App) runMethods(ctx context.Context, filter string) error {
	if isGlob(filter) && !doublestar.ValidatePattern(segmentPath(filter)) {
		return fmt.Errorf("invalid method pattern %q", filter)
	}
	names, err := a.listMethods(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		if matchMethod(filter, name) {
			fmt.Fprintln(a.stdout, name)
		}
	}
	return nil
}

// watchMethods prints the filtered list, then reprints it after every change
// below the namespace root until ctx is canceled.
func (a *App) watchMethods(ctx context.Context, filter string) error {
	if err := a.runMethods(ctx, filter); err != nil {
		return err
	}
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	w, err := watch.New(watch.Config{
		Root:   sess.root,
		Stderr: a.stderr,
		OnChange: func(ctx context.Context, changed []string) error {
			fmt.Fprintln(a.stdout, SubtitleStyle.Render(fmt.Sprintf("--- %d change(s) in %s", len(changed), sess.root)))
			return a.runMethods(ctx, filter)
		},
	})
	if err != nil {
		return a.fail(err)
	}
	return w.Run(ctx)
}

// matchMethod reports whether the dotted name is selected by filter.
func matchMethod(filter, name string) bool {
	if !isGlob(filter) {
		return strings.HasPrefix(name, filter)
	}
	matched, err := doublestar.Match(segmentPath(filter), segmentPath(name))
	return err == nil && matched
}

func isGlob(filter string) bool {
	return strings.ContainsAny(filter, "*?[{")
}

// segmentPath turns name separators into path separators so that glob
// wildcards stop at segment boundaries.
func segmentPath(s string) string {
	return strings.ReplaceAll(s, namespace.Separator, "/")
}

func (a *App) listMethods(ctx context.Context) ([]string, error) {
	sess, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	names, err := namespace.ListMethods(a.Store, sess.root)
	if err != nil {
		return nil, a.fail(err)
	}
	return names, nil
}
