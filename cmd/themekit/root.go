package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
	themesFile string
	theme      string
	store      string
	storePath  string
	logLevel   string
	verbose    bool

	app *appContext
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "themekit manages light, dark and custom color themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Settings file (default ./themekit.yaml or the user config directory)")
	pf.StringVar(&flags.themesFile, "themes", "", "YAML file with custom theme definitions")
	pf.StringVar(&flags.theme, "theme", "", "Initial theme before the saved preference is restored")
	pf.StringVar(&flags.store, "store", "", "Preference store: cookie, sqlite or memory")
	pf.StringVar(&flags.storePath, "store-path", "", "Location of the cookie file or SQLite database")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newCurrentCmd(flags))
	cmd.AddCommand(newUseCmd(flags))
	cmd.AddCommand(newToggleCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newServeCmd(flags))

	return cmd
}

// load builds the application context once per invocation.
func (f *rootFlags) load(cmd *cobra.Command) (*appContext, error) {
	if f.app != nil {
		return f.app, nil
	}
	app, err := newAppContext(cmd, f)
	if err != nil {
		return nil, err
	}
	f.app = app
	return app, nil
}

