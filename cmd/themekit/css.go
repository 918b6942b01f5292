package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/dom"
)

type cssOptions struct {
	selector string
}

func newCSSCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &cssOptions{}

	cmd := &cobra.Command{
		Use:   "css [name]",
		Short: "Print the CSS variables of a theme",
		Long: "Print the CSS custom properties of the named theme, or of the saved " +
			"theme when no name is given. Naming a theme does not change the saved choice.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSS(cmd, rootFlags, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.selector, "selector", ":root", "CSS selector wrapping the variables")

	return cmd
}

func runCSS(cmd *cobra.Command, rootFlags *rootFlags, opts *cssOptions, args []string) error {
	app, err := rootFlags.load(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		out, err := app.renderThemeCSS(cmd, args[0], opts.selector)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	doc := dom.NewDocument()
	_, cleanup, err := app.openManager(cmd.Context(), managerOptions{document: doc, wait: true})
	if err != nil {
		return newCommandError("render css", "restoring the saved theme", err, "Check the preference store settings.")
	}
	defer cleanup()

	fmt.Fprint(cmd.OutOrStdout(), doc.CSS(opts.selector))
	return nil
}
