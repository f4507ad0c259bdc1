// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/irnix/irnix/internal/config"
	"github.com/irnix/irnix/internal/launcher"
	"github.com/irnix/irnix/internal/namespace"
	"github.com/irnix/irnix/internal/terminal"
	"github.com/irnix/irnix/internal/testutil"
	"github.com/irnix/irnix/pkg/types"

	"github.com/spf13/afero"
)

const nsRoot = "/ns"

type (
	// fakeConfig serves a fixed configuration and records load options.
	fakeConfig struct {
		cfg   *config.Config
		err   error
		calls int
		opts  config.LoadOptions
	}

	// harness runs the command tree against an in-memory namespace with
	// fake terminal detection and a launcher that only records commands.
	harness struct {
		app      *App
		stdout   bytes.Buffer
		stderr   bytes.Buffer
		streams  terminal.Streams
		execErr  error
		launched []launcher.Command
		config   *fakeConfig
	}
)

func (f *fakeConfig) Load(_ context.Context, opts config.LoadOptions) (*config.Config, error) {
	f.calls++
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	cp := *f.cfg
	return &cp, nil
}

// sampleNamespace holds a contracted object, an uncontracted object and an
// object with a broken manifest.
func sampleNamespace(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	testutil.MustWriteFile(t, fsys, nsRoot+"/io/.self", "write: stdin! path! --mode=?\nread: path! stdout!\n")
	testutil.MustWriteFile(t, fsys, nsRoot+"/io/write", "#!/bin/sh\n")
	testutil.MustWriteFile(t, fsys, nsRoot+"/io/read", "#!/bin/sh\n")
	testutil.MustWriteFile(t, fsys, nsRoot+"/tools/fmt", "#!/bin/sh\n")
	testutil.MustWriteFile(t, fsys, "/broken/bad/.self", "ok: arg!\nbad arg\n")
	testutil.MustWriteFile(t, fsys, "/broken/bad/ok", "")
	return fsys
}

func newHarness(t *testing.T, fsys afero.Fs) *harness {
	t.Helper()
	h := &harness{
		streams: terminal.Streams{StdoutTerminal: true},
		config: &fakeConfig{cfg: &config.Config{
			Namespace: nsRoot,
			UI:        config.UIConfig{ColorScheme: config.ColorSchemeAuto},
		}},
	}
	app, err := NewApp(Dependencies{
		Config:  h.config,
		Store:   namespace.NewStore(fsys),
		Streams: func() terminal.Streams { return h.streams },
		Exec: func(c launcher.Command) error {
			h.launched = append(h.launched, c)
			return h.execErr
		},
		Environ: func() []string { return []string{"IRNIX_TEST=1"} },
		Stdout:  &h.stdout,
		Stderr:  &h.stderr,
	})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	h.app = app
	return h
}

func (h *harness) run(args ...string) types.ExitCode {
	return run(context.Background(), h.app, args)
}
