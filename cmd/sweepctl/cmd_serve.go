package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/promptsweep/sweepctl/internal/projectconfig"
	"github.com/promptsweep/sweepctl/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var (
		port      int
		staticDir string
		noBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the browser sweep page",
		Long: `Host the browser sweep page and its supporting API.

The server exposes the page configuration (/api/config), a model listing
proxied from the LiteLLM upstream (/api/litellm/models) and a health probe
(/api/health), and serves the sweep page itself. The page assets are
embedded; --static-dir serves a local build instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := projectconfig.Load(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			srv, err := webserver.New(webserver.Config{
				Port:      port,
				StaticDir: staticDir,
				NoBrowser: noBrowser,
				Project:   cfg,
			})
			if err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default: configured frontend port)")
	cmd.Flags().StringVar(&staticDir, "static-dir", "", "Serve page assets from this directory instead of the embedded build")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open the page in a browser")

	return cmd
}
