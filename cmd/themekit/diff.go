package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/dom"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/pkg/diff"
)

type diffOptions struct {
	selector string
	stat     bool
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Compare the CSS variables of two themes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.selector, "selector", ":root", "CSS selector wrapping the variables")
	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Only print the number of changed lines")

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, opts *diffOptions, from, to string) error {
	app, err := rootFlags.load(cmd)
	if err != nil {
		return err
	}

	before, err := app.renderThemeCSS(cmd, from, opts.selector)
	if err != nil {
		return err
	}
	after, err := app.renderThemeCSS(cmd, to, opts.selector)
	if err != nil {
		return err
	}

	if opts.stat {
		removed, added := diff.Changed(before, after)
		fmt.Fprintf(cmd.OutOrStdout(), "%d removed, %d added\n", removed, added)
		return nil
	}

	out := diff.GenerateUnifiedDiff(before, after, from, to)
	if out == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s and %s have identical colors\n", from, to)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// renderThemeCSS projects name onto a fresh document without touching the
// saved preference.
func (a *appContext) renderThemeCSS(cmd *cobra.Command, name, selector string) (string, error) {
	if !a.builder.Registry(a.themes).Has(name) {
		return "", newCommandError("render css", name, theme.ErrThemeNotFound, "Run 'themekit list' to see available themes.")
	}

	doc := dom.NewDocument()
	_, cleanup, err := a.openManager(cmd.Context(), managerOptions{
		theme:         name,
		noPersistence: true,
		document:      doc,
		wait:          true,
	})
	if err != nil {
		return "", newCommandError("render css", name, err, "Check the themes file.")
	}
	defer cleanup()

	return doc.CSS(selector), nil
}
