package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "junction",
		Short: "Navigation router tooling for application shells",
		Long: `Junction is an embeddable navigation router for application shells.

It resolves paths against a nested route tree, enforces ordered
navigation guards, and maintains a bounded back/forward history.
The CLI works with declarative YAML route manifests:

  - serve   - run the HTTP/WebSocket navigation bridge
  - match   - resolve a path against a manifest
  - routes  - list a manifest's route table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		matchCmd(),
		routesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
