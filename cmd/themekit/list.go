package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type listedTheme struct {
	Definition theme.Definition
	Current    bool
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := rootFlags.load(cmd)
	if err != nil {
		return err
	}

	mgr, cleanup, err := app.openManager(cmd.Context(), managerOptions{wait: true})
	if err != nil {
		return newCommandError("list", "restoring the saved theme", err, "Check the preference store settings.")
	}
	defer cleanup()

	current := mgr.CurrentTheme()
	defs := mgr.Themes().Definitions()
	listed := make([]listedTheme, len(defs))
	for i, def := range defs {
		listed[i] = listedTheme{Definition: def, Current: def.Name == current}
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, current, listed)
	}
	return renderListTable(cmd, listed)
}

func renderListTable(cmd *cobra.Command, themes []listedTheme) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tDISPLAY NAME\tCURRENT")

	useUnicode := supportsUnicode(cmd.OutOrStdout())

	for _, t := range themes {
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			t.Definition.Name,
			t.Definition.Label(),
			formatCurrent(t.Current, useUnicode),
		)
	}

	return writer.Flush()
}

type listJSONTheme struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	ClassName   string `json:"className"`
	Current     bool   `json:"current"`
}

type listJSONPayload struct {
	Version string          `json:"version"`
	Current string          `json:"current"`
	Count   int             `json:"count"`
	Themes  []listJSONTheme `json:"themes"`
}

func renderListJSON(cmd *cobra.Command, current string, themes []listedTheme) error {
	payload := listJSONPayload{
		Version: "1.0",
		Current: current,
		Count:   len(themes),
		Themes:  make([]listJSONTheme, len(themes)),
	}

	for i, t := range themes {
		payload.Themes[i] = listJSONTheme{
			Name:        t.Definition.Name,
			DisplayName: t.Definition.Label(),
			ClassName:   theme.ClassName(t.Definition.Name),
			Current:     t.Current,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func formatCurrent(current, useUnicode bool) string {
	switch {
	case !current:
		return ""
	case useUnicode:
		return "●"
	default:
		return "*"
	}
}
