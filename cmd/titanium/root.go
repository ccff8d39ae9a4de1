// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"titanium-cli/internal/help"
	"titanium-cli/internal/logger"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute.
const (
	ExitCodeOK      = 0
	ExitCodeFailure = 1
	ExitCodePanic   = 2
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// packageInfo identifies the product in the banner.
func packageInfo() logger.PackageInfo {
	return logger.PackageInfo{
		Name:      "Titanium Command-Line Interface",
		Version:   Version,
		Copyright: "Copyright (c) 2012-2026 the Titanium CLI authors. All Rights Reserved.",
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// newRootCommand builds the command tree bound to app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   help.DefaultProgram,
		Short: "Titanium command-line interface",
		// Unknown words are command names for the help screen, not errors.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runHelp(cmd.Context(), args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/titanium/config.cue)")
	flags.StringVar(&app.flags.logLevel, "log-level", "", "minimum log level (trace, debug, info, warn, error)")
	flags.BoolVar(&app.flags.noColors, "no-colors", false, "disable colors")
	flags.BoolVarP(&app.flags.quiet, "quiet", "q", false, "suppress all output")
	flags.BoolVar(&app.flags.noBanner, "no-banner", false, "do not print the banner")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		// Built-in commands keep Cobra's help; everything else is a
		// registry command.
		if cmd != rootCmd {
			defaultHelp(cmd, args)
			return
		}
		if err := app.runHelp(cmd.Context(), cmd.Flags().Args()); err != nil {
			app.helpErr = err
		}
	})

	rootCmd.SetHelpCommand(newHelpCommand(app))
	rootCmd.AddCommand(newVersionCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// Execute runs the CLI and exits with the resulting status code.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, NewApp(Dependencies{}), os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes the command tree for args and returns the exit code.
func run(ctx context.Context, app *App, args []string) int {
	app.helpErr = nil
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		err = app.helpErr
	}
	return app.exitCode(err)
}

func (a *App) exitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, help.ErrUnknownCommand) {
		return ExitCodeFailure
	}

	// Cobra usage errors (e.g. bad flag values) arrive before init.
	st := a.init(context.Background())
	st.log.Error("%s", err.Error())
	return ExitCodeFailure
}

// guard runs fn, turning a panic into a logged exception with a stack.
func (a *App) guard(ctx context.Context, fn func(st *runState) error) (err error) {
	st := a.init(ctx)
	defer func() {
		if r := recover(); r != nil {
			perr := pkgerrors.WithStack(fmt.Errorf("panic: %v", r))
			st.log.Exception(perr)
			err = &ExitError{Code: ExitCodePanic, Err: perr}
		}
	}()
	return fn(st)
}
