package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/manager"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// selectTheme shows the picker. Tests replace it.
var selectTheme = func(options []huh.Option[string], value *string) error {
	return huh.NewSelect[string]().
		Title("Choose a theme").
		Options(options...).
		Value(value).
		Run()
}

func newPickCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a theme interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rootFlags.load(cmd)
			if err != nil {
				return err
			}

			mgr, cleanup, err := app.openManager(cmd.Context(), managerOptions{wait: true})
			if err != nil {
				return newCommandError("pick theme", "restoring the saved theme", err, "Check the preference store settings.")
			}
			defer cleanup()

			choice := mgr.CurrentTheme()
			if err := selectTheme(pickOptions(mgr.Themes(), choice), &choice); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				return newCommandError("pick theme", "reading the selection", err, "Use 'themekit use <name>' instead.")
			}

			changed, err := applyChoice(mgr, choice)
			if err != nil {
				return newCommandError("pick theme", choice, err, "Run 'themekit list' to see available themes.")
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Theme unchanged: %s\n", choice)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", choice)
			return nil
		},
	}
}

// pickOptions lists every registered theme, preselecting current.
func pickOptions(reg theme.Registry, current string) []huh.Option[string] {
	defs := reg.Definitions()
	opts := make([]huh.Option[string], len(defs))
	for i, def := range defs {
		opts[i] = huh.NewOption(def.Label(), def.Name).Selected(def.Name == current)
	}
	return opts
}

// applyChoice switches to name and waits for it to be saved. It reports
// whether the active theme changed.
func applyChoice(mgr *manager.Manager, name string) (bool, error) {
	if name == mgr.CurrentTheme() {
		return false, nil
	}
	if err := mgr.UpdateTheme(name); err != nil {
		return false, err
	}
	mgr.Sync()
	return true, nil
}
