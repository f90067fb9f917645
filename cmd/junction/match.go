package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/junction-ui/junction/pkg/manifest"
	"github.com/junction-ui/junction/pkg/router"
)

func matchCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "match <path>",
		Short: "Resolve a path against a route manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			f, err := manifest.LoadFile(manifestPath)
			if err != nil {
				return err
			}
			routes, err := f.Build(inspectionRegistry(f))
			if err != nil {
				return err
			}

			if f.BasePath != "" {
				path = f.BasePath + path
			}

			r := router.New(routes)
			var found bool
			r.Walk(func(route *router.Route, fullPattern string) {
				if found {
					return
				}
				params, ok := router.Match(fullPattern, path)
				if !ok {
					return
				}
				found = true

				fmt.Printf("%s %s\n", color.GreenString("✓"), color.CyanString(fullPattern))
				if route.Meta.Title != "" {
					fmt.Printf("  title:  %s\n", route.Meta.Title)
				}
				if route.Meta.RequiresAuth {
					fmt.Printf("  auth:   %s\n", color.YellowString("required"))
				}
				if len(route.Guards) > 0 {
					fmt.Printf("  guards: %d\n", len(route.Guards))
				}
				for _, p := range params {
					fmt.Printf("  param:  %s = %s\n", p.Name, color.CyanString(p.Value))
				}
			})

			if !found {
				return fmt.Errorf("no route matches %q", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "routes.yaml", "route manifest file")
	return cmd
}
