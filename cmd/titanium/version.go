// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.guard(cmd.Context(), func(st *runState) error {
				st.log.Log("%s", getVersionString())
				return nil
			})
		},
	}
}
