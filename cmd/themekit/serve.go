package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/server"
)

type serveOptions struct {
	addr string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the themed demo page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rootFlags.load(cmd)
			if err != nil {
				return err
			}

			addr := app.settings.Server.Addr
			if cmd.Flags().Changed("addr") {
				addr = opts.addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Options{
				Addr:        addr,
				Themes:      app.themes,
				Theme:       app.settings.Theme,
				Persistence: app.settings.PersistenceOptions(),
				Logger:      app.log,
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Serving themes on http://%s\n", addr)
			if err := srv.Run(ctx); err != nil {
				return newCommandError("serve", addr, err, "Pick a free address with --addr.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default from server.addr)")

	return cmd
}
