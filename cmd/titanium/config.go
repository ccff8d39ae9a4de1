// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"

	"titanium-cli/internal/config"
	"titanium-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `titanium config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage titanium configuration",
		Long: `Manage titanium configuration.

Configuration is stored in config.cue under the XDG config directory:
  - Linux: ~/.config/titanium/config.cue
  - macOS: ~/Library/Application Support/titanium/config.cue
  - Windows: %APPDATA%\titanium\config.cue

Environment variables prefixed with TITANIUM_ override file values,
e.g. TITANIUM_CLI_LOG_LEVEL=debug.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.guard(cmd.Context(), app.showConfig)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.guard(cmd.Context(), app.initConfig)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.guard(cmd.Context(), app.showConfigPath)
		},
	})

	return cfgCmd
}

func (a *App) showConfig(st *runState) error {
	if st.exception != nil {
		st.log.Exception(st.exception)
		renderIssues(st.log, st.exception)
		return &ExitError{Code: ExitCodeFailure, Err: st.exception}
	}
	st.log.Log("%s", config.GenerateCUE(st.cfg))
	return nil
}

func (a *App) initConfig(st *runState) error {
	path, err := a.configFilePath()
	if err != nil {
		st.log.Exception(err)
		return &ExitError{Code: ExitCodeFailure, Err: err}
	}
	created, err := config.CreateDefaultConfigAt(path)
	if err != nil {
		st.log.Exception(err)
		renderIssues(st.log, err)
		return &ExitError{Code: ExitCodeFailure, Err: err}
	}
	if created {
		st.log.Log("Created %s", st.log.Theme().Cmd.Render(path))
	} else {
		st.log.Log("%s already exists", st.log.Theme().Cmd.Render(path))
	}
	return nil
}

func (a *App) showConfigPath(st *runState) error {
	path, err := a.configFilePath()
	if err != nil {
		st.log.Exception(err)
		return &ExitError{Code: ExitCodeFailure, Err: err}
	}
	st.log.Log("%s", path)
	return nil
}

// configFilePath resolves --config, then the injected config dir, then the
// XDG default.
func (a *App) configFilePath() (string, error) {
	if a.flags.configFile != "" {
		return a.flags.configFile, nil
	}
	if a.configDir != "" {
		return filepath.Join(a.configDir, config.ConfigFileName+"."+config.ConfigFileExt), nil
	}
	path, err := config.ConfigFilePath()
	if err != nil {
		return "", issue.WrapWithOperation(err, "resolve config path")
	}
	return path, nil
}
