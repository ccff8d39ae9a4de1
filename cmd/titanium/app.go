// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"titanium-cli/internal/config"
	"titanium-cli/internal/discovery"
	"titanium-cli/internal/logger"
	"titanium-cli/internal/registry"
	"titanium-cli/pkg/cmdmeta"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer; all Cobra handlers receive an App reference.
	App struct {
		Config    ConfigProvider
		Discovery DiscoveryService
		Loader    registry.Loader
		configDir string
		stdout    io.Writer
		stderr    io.Writer

		flags   rootFlags
		state   *runState
		helpErr error
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config    ConfigProvider
		Discovery DiscoveryService
		Loader    registry.Loader
		// ConfigDir overrides the config directory lookup when set.
		ConfigDir string
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// DiscoveryService builds the command table for a configuration.
	DiscoveryService interface {
		Discover(ctx context.Context, cfg *config.Config) (*discovery.Result, error)
	}

	// DiscoveryFunc adapts a function to DiscoveryService.
	DiscoveryFunc func(ctx context.Context, cfg *config.Config) (*discovery.Result, error)

	defaultDiscovery struct{}

	rootFlags struct {
		configFile string
		logLevel   string
		noColors   bool
		quiet      bool
		noBanner   bool
	}

	// runState is built once per invocation by App.init.
	runState struct {
		cfg       *config.Config
		log       *logger.Logger
		table     *registry.Table
		exception error
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:    deps.Config,
		Discovery: deps.Discovery,
		Loader:    deps.Loader,
		configDir: deps.ConfigDir,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Discovery == nil {
		app.Discovery = defaultDiscovery{}
	}
	if app.Loader == nil {
		app.Loader = cmdmeta.FileLoader{}
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// Discover implements DiscoveryService.
func (f DiscoveryFunc) Discover(ctx context.Context, cfg *config.Config) (*discovery.Result, error) {
	return f(ctx, cfg)
}

func (defaultDiscovery) Discover(_ context.Context, cfg *config.Config) (*discovery.Result, error) {
	return discovery.New(cfg).Discover()
}

// init loads configuration, builds the logger and discovers commands. It
// runs once; failures are collected into the carried exception.
func (a *App) init(ctx context.Context) *runState {
	if a.state != nil {
		return a.state
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var errs []error

	cfg, err := a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: a.flags.configFile,
		ConfigDirPath:  a.configDir,
	})
	if err != nil {
		errs = append(errs, err)
		cfg = config.DefaultConfig()
	}

	log := a.newLogger(cfg)
	if err := a.applyLogLevel(log, cfg); err != nil {
		errs = append(errs, err)
	}

	table := registry.NewTable()
	res, err := a.Discovery.Discover(ctx, cfg)
	switch {
	case err != nil:
		errs = append(errs, err)
	case res != nil:
		table = res.Table
		renderDiagnostics(log, res.Diagnostics)
	}

	a.state = &runState{
		cfg:       cfg,
		log:       log,
		table:     table,
		exception: errors.Join(errs...),
	}
	return a.state
}

func (a *App) newLogger(cfg *config.Config) *logger.Logger {
	colors := cfg.CLI.Colors && !a.flags.noColors
	banner := cfg.CLI.Banner && !a.flags.noBanner
	quiet := cfg.CLI.Quiet || a.flags.quiet

	return logger.New(
		logger.WithWriters(a.stdout, a.stderr),
		logger.WithPackageInfo(packageInfo()),
		logger.WithColorize(colors),
		logger.WithBanner(banner),
		logger.WithSilent(quiet),
	)
}
