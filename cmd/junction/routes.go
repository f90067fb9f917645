package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/junction-ui/junction/pkg/manifest"
	"github.com/junction-ui/junction/pkg/router"
)

func routesCmd() *cobra.Command {
	var (
		manifestPath string
		sidebarOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List a manifest's route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := manifest.LoadFile(manifestPath)
			if err != nil {
				return err
			}
			routes, err := f.Build(inspectionRegistry(f))
			if err != nil {
				return err
			}

			r := router.New(routes)
			r.Walk(func(route *router.Route, fullPattern string) {
				if sidebarOnly && !route.Meta.ShowInSidebar {
					return
				}

				marks := ""
				if route.Meta.RequiresAuth {
					marks += color.YellowString(" [auth]")
				}
				if len(route.Guards) > 0 {
					marks += fmt.Sprintf(" [%d guards]", len(route.Guards))
				}

				title := route.Meta.Title
				if title == "" {
					title = "-"
				}
				fmt.Printf("%-30s %s%s\n", color.CyanString(fullPattern), title, marks)
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "routes.yaml", "route manifest file")
	cmd.Flags().BoolVar(&sidebarOnly, "sidebar", false, "only routes marked show_in_sidebar")
	return cmd
}
