package main

import (
	"github.com/junction-ui/junction/pkg/manifest"
	"github.com/junction-ui/junction/pkg/router"
)

// inspectionRegistry satisfies every handler and guard name a manifest
// declares with no-op stubs, so the match and routes commands can build
// route trees without the host application's bindings.
func inspectionRegistry(f *manifest.File) *manifest.Registry {
	reg := &manifest.Registry{
		Handlers: make(map[string]router.Handler),
		Guards:   make(map[string]router.Guard),
	}
	collectNames(f.Routes, reg)
	return reg
}

// serveRegistry stubs handler names only. Custom guard names still fail
// the build: serving a manifest whose guards have no binding would
// silently drop its access rules.
func serveRegistry(f *manifest.File) *manifest.Registry {
	reg := &manifest.Registry{
		Handlers: make(map[string]router.Handler),
	}
	collectNames(f.Routes, reg)
	return reg
}

func collectNames(specs []manifest.RouteSpec, reg *manifest.Registry) {
	for _, spec := range specs {
		if spec.Handler != "" {
			reg.Handlers[spec.Handler] = func(ctx *router.Context) {}
		}
		if reg.Guards != nil {
			for _, name := range spec.Guards {
				reg.Guards[name] = router.GuardFunc(func(ctx *router.Context) router.Response {
					return router.Allow()
				})
			}
		}
		collectNames(spec.Children, reg)
	}
}
