// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/irnix/irnix/pkg/types"

	"github.com/spf13/afero"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version, Commit, BuildDate = "v0.3.0", "abc1234", "2026-01-10T09:00:00Z"
		want := "v0.3.0 (commit: abc1234, built: 2026-01-10T09:00:00Z)"
		if got := getVersionString(); got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}

func TestRootCommand_Tree(t *testing.T) {
	t.Parallel()

	h := newHarness(t, afero.NewMemMapFs())
	root := newRootCommand(h.app)

	for _, path := range [][]string{
		{"exec"}, {"e"}, {"methods"}, {"ls"}, {"describe"},
		{"config", "show"}, {"config", "path"}, {"config", "init"}, {"completion"},
	} {
		found, _, err := root.Find(path)
		if err != nil || found == root {
			t.Errorf("Find(%v) did not reach a subcommand: %v", path, err)
		}
	}
	for _, name := range []string{"namespace", "config", "verbose"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	h := newHarness(t, afero.NewMemMapFs())
	if code := h.run("frobnicate"); code != types.ExitStructural {
		t.Errorf("exit = %d, want %d", code, types.ExitStructural)
	}
	if h.stderr.Len() == 0 {
		t.Error("expected an error message on stderr")
	}
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, afero.NewMemMapFs())
			if code := h.run("completion", shell); code != types.ExitSuccess {
				t.Fatalf("exit = %d, stderr:\n%s", code, h.stderr.String())
			}
			if !strings.Contains(h.stdout.String(), "irnix") {
				t.Errorf("%s completion does not mention irnix", shell)
			}
		})
	}
}

func TestRun_VerboseFlagEnablesDebug(t *testing.T) {
	// Not parallel: the debug logger becomes the slog default.
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := newHarness(t, sampleNamespace(t))
	if code := h.run("-v", "methods", "io."); code != types.ExitSuccess {
		t.Fatalf("exit = %d, stderr:\n%s", code, h.stderr.String())
	}
	if !h.app.verbose() {
		t.Error("verbose() = false after -v")
	}
	if !strings.Contains(h.stderr.String(), "namespace=/ns") {
		t.Errorf("debug log missing from stderr:\n%s", h.stderr.String())
	}
}
