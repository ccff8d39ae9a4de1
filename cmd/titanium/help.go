// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"titanium-cli/internal/help"

	"github.com/spf13/cobra"
)

func newHelpCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command] [subcommand]",
		Short: "Displays this help screen",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runHelp(cmd.Context(), args)
		},
	}
}

// runHelp prints the banner, then the help screen selected by positionals.
// Startup failures are printed first, followed by any linked issue.
func (a *App) runHelp(ctx context.Context, positionals []string) error {
	return a.guard(ctx, func(st *runState) error {
		st.log.Banner()

		renderer := help.New(st.log, st.table, a.Loader, help.WithProgram(help.DefaultProgram))
		err := renderer.Run(help.Invocation{
			Positionals: positionals,
			Exception:   st.exception,
		})

		if st.exception != nil {
			renderIssues(st.log, st.exception)
			// Help was shown, but the run still failed.
			if err == nil {
				err = &ExitError{Code: ExitCodeFailure, Err: st.exception}
			}
		}
		return err
	})
}
