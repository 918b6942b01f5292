package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/manager"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func newUseCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Switch to a theme and save the choice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeAction(cmd, rootFlags, "use theme", func(mgr *manager.Manager) error {
				return mgr.UpdateTheme(args[0])
			})
		},
	}
}

func newToggleCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeAction(cmd, rootFlags, "toggle theme", func(mgr *manager.Manager) error {
				return mgr.ToggleTheme()
			})
		},
	}
}

// runThemeAction restores the saved theme, applies action and waits for the
// new choice to be written.
func runThemeAction(cmd *cobra.Command, rootFlags *rootFlags, operation string, action func(*manager.Manager) error) error {
	app, err := rootFlags.load(cmd)
	if err != nil {
		return err
	}

	mgr, cleanup, err := app.openManager(cmd.Context(), managerOptions{wait: true})
	if err != nil {
		return newCommandError(operation, "restoring the saved theme", err, "Check the preference store settings.")
	}
	defer cleanup()

	if err := action(mgr); err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			return newCommandError(operation, "unknown theme", err, "Run 'themekit list' to see available themes.")
		}
		return newCommandError(operation, "updating the active theme", err, "Try again.")
	}
	mgr.Sync()

	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mgr.CurrentTheme())
	return nil
}
