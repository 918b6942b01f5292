package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrentCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rootFlags.load(cmd)
			if err != nil {
				return err
			}

			mgr, cleanup, err := app.openManager(cmd.Context(), managerOptions{wait: true})
			if err != nil {
				return newCommandError("read the current theme", "restoring the saved theme", err,
					"Check the preference store settings.")
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), mgr.CurrentTheme())
			return nil
		},
	}
}
