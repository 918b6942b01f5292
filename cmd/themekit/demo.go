package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

func newDemoCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Open the interactive theme demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rootFlags.load(cmd)
			if err != nil {
				return err
			}

			changes := tui.NewForwarder()
			defer changes.Stop()

			mgr, cleanup, err := app.openManager(cmd.Context(), managerOptions{onThemeChange: changes.Notify})
			if err != nil {
				return newCommandError("start demo", "mounting the theme manager", err, "Check the preference store settings.")
			}
			defer cleanup()

			p := tea.NewProgram(
				tui.NewModel(cmd.Context(), mgr),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			changes.Start(p.Send)

			if _, err := p.Run(); err != nil {
				return newCommandError("run demo", "terminal session", err, "Run the demo from an interactive terminal.")
			}
			mgr.Sync()
			return nil
		},
	}
}
