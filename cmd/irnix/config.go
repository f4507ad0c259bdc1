// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/irnix/irnix/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `irnix config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage irnix configuration",
		Long: `Manage irnix configuration.

Configuration is stored in:
  - Linux: ~/.config/irnix/config.cue
  - macOS: ~/Library/Application Support/irnix/config.cue
  - Windows: %APPDATA%\irnix\config.cue

IRNIX_NAMESPACE and IRNIX_VERBOSE override the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig(cmd.Context())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.FilePath(app.loadOptions())
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig()
		},
	})

	return cfgCmd
}

func (a *App) showConfig(ctx context.Context) error {
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(a.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(a.stdout)

	path, err := config.FilePath(a.loadOptions())
	if err != nil {
		return err
	}
	if !fileExists(path) {
		path = SubtitleStyle.Render("(using defaults)")
	}
	fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	fmt.Fprintln(a.stdout)

	namespace := valueStyle.Render(sess.root)
	if sess.cfg.Namespace == "" && a.flags.namespace == "" {
		namespace += " " + SubtitleStyle.Render("(default)")
	}
	fmt.Fprintf(a.stdout, "%s: %s\n", keyStyle.Render("namespace"), namespace)

	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(a.stdout, "  color_scheme: %s\n", valueStyle.Render(sess.cfg.UI.ColorScheme.String()))
	fmt.Fprintf(a.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", sess.verbose)))

	return nil
}

func (a *App) initConfig() error {
	path, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(a.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(a.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
