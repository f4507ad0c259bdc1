// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/irnix/irnix/internal/config"
	"github.com/irnix/irnix/internal/issue"
	"github.com/irnix/irnix/internal/launcher"
	"github.com/irnix/irnix/internal/namespace"
	"github.com/irnix/irnix/internal/terminal"
	"github.com/irnix/irnix/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App and reaches
	// the filesystem, the terminal and the process table only through it.
	App struct {
		Config  ConfigProvider
		Store   namespace.Store
		Streams func() terminal.Streams
		Exec    func(launcher.Command) error
		Environ func() []string
		stdout  io.Writer
		stderr  io.Writer

		flags  globalFlags
		logger *log.Logger
		sess   *session
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Store   namespace.Store
		Streams func() terminal.Streams
		Exec    func(launcher.Command) error
		Environ func() []string
		Stdout  io.Writer
		Stderr  io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// globalFlags are the persistent root flags.
	globalFlags struct {
		namespace  string
		configFile string
		verbose    bool
	}

	// session is the configuration resolved for one invocation.
	session struct {
		cfg     *config.Config
		root    string
		verbose bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Store == nil {
		deps.Store = namespace.OSStore()
	}
	if deps.Streams == nil {
		deps.Streams = terminal.Detect
	}
	if deps.Exec == nil {
		deps.Exec = launcher.Exec
	}
	if deps.Environ == nil {
		deps.Environ = os.Environ
	}

	return &App{
		Config:  deps.Config,
		Store:   deps.Store,
		Streams: deps.Streams,
		Exec:    deps.Exec,
		Environ: deps.Environ,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
		logger:  installLogger(deps.Stderr, false),
	}, nil
}

// session loads configuration on first use and resolves the namespace root.
// Commands that never touch the namespace, like "config path", skip it, so a
// broken config file cannot lock the user out of repairing it.
func (a *App) session(ctx context.Context) (*session, error) {
	if a.sess != nil {
		return a.sess, nil
	}

	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		return nil, a.configFailure(err)
	}

	verbose := a.flags.verbose || cfg.UI.Verbose
	setVerbose(a.logger, verbose)

	root, err := config.ResolveNamespace(a.flags.namespace, cfg)
	if err != nil {
		return nil, a.configFailure(err)
	}
	slog.Debug("session", "namespace", root, "config", a.flags.configFile)

	a.sess = &session{cfg: cfg, root: root, verbose: verbose}
	return a.sess, nil
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.flags.configFile}
}

func (a *App) configFailure(err error) error {
	msg := "\n" + ErrorStyle.Render("Error:") + " " + formatErrorForDisplay(err, a.flags.verbose) + "\n"
	return &ExitError{
		Code: types.ExitConfiguration,
		Err:  newServiceError(err, issue.ConfigLoadFailedId, msg),
	}
}

// fail classifies err with the session's verbosity. I/O failures are tied to
// the namespace root in use, since a wrong root is their usual cause.
func (a *App) fail(err error) error {
	if id, _, _ := classifyError(err, false); id == issue.NamespaceIOId && a.sess != nil {
		err = issue.NewErrorContext().
			WithOperation("read namespace").
			WithResource(a.sess.root).
			WithSuggestions(
				"Check --namespace, IRNIX_NAMESPACE and the namespace key of the config file",
				"Run 'irnix config show' to see the namespace in use",
			).
			Wrap(err).
			BuildError()
	}
	return failure(err, a.verbose())
}

func (a *App) verbose() bool {
	if a.sess != nil {
		return a.sess.verbose
	}
	return a.flags.verbose
}

// stylePath is the glamour style used for issue help, following the
// configured color scheme.
func (a *App) stylePath() string {
	if a.sess != nil && a.sess.cfg.UI.ColorScheme != "" {
		return a.sess.cfg.UI.ColorScheme.String()
	}
	return config.ColorSchemeAuto.String()
}

// resolver returns a resolver over the session's namespace.
func (a *App) resolver(ctx context.Context) (*namespace.Resolver, error) {
	sess, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	return namespace.NewResolver(sess.root, a.Store), nil
}
