package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/junction-ui/junction/pkg/bridge"
	"github.com/junction-ui/junction/pkg/manifest"
	"github.com/junction-ui/junction/pkg/middleware"
)

func serveCmd() *cobra.Command {
	var (
		manifestPath string
		addr         string
		metrics      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the navigation bridge server for a route manifest",
		Long: `Serve loads a YAML route manifest, registers a router for it, and
exposes the navigation bridge API:

  POST /v1/routers/{handle}/navigate
  POST /v1/routers/{handle}/back
  POST /v1/routers/{handle}/forward
  GET  /v1/routers/{handle}/state
  GET  /v1/routers/{handle}/history
  GET  /v1/routers/{handle}/events    (WebSocket)
  GET  /metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			f, err := manifest.LoadFile(manifestPath)
			if err != nil {
				return err
			}
			r, err := f.NewRouter(serveRegistry(f))
			if err != nil {
				return err
			}

			registry := bridge.NewRegistry()
			var handle bridge.Handle
			if metrics {
				handle = registry.RegisterNavigator(r, middleware.Prometheus(r))
			} else {
				handle = registry.Register(r)
			}

			server := bridge.NewServer(registry, bridge.WithLogger(logger))

			fmt.Printf("%s router registered as handle %s\n",
				color.GreenString("✓"), color.CyanString("%d", handle))
			fmt.Printf("  listening on %s\n", color.CyanString("http://%s", addr))

			return http.ListenAndServe(addr, server.Handler())
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "routes.yaml", "route manifest file")
	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:7411", "listen address")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "collect Prometheus navigation metrics")
	return cmd
}
