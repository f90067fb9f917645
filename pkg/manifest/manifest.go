// Package manifest loads declarative route trees from YAML documents.
//
// A manifest names handlers and guards symbolically; a Registry binds
// those names to Go values at build time. Two guard names are built in:
// "require_auth" and "role:<name>".
//
// Example manifest:
//
//	base_path: /app
//	routes:
//	  - pattern: /
//	    title: Home
//	    handler: home
//	  - pattern: /admin
//	    title: Admin
//	    requires_auth: true
//	    guards: [require_auth, "role:admin"]
//	    children:
//	      - pattern: /users
//	        handler: admin_users
package manifest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/junction-ui/junction/pkg/router"
)

// File is a parsed route manifest.
type File struct {
	// BasePath, when set, is prepended to every top-level route pattern
	// by Build, and NewRouter additionally applies it to navigation
	// paths via SetBasePath. Hosts keep navigating with unprefixed
	// paths; the prefix lives only in the compiled patterns.
	BasePath string `yaml:"base_path"`

	// HistoryLimit overrides the router's history entry limit when > 0.
	HistoryLimit int `yaml:"history_limit"`

	// Routes is the declared route tree.
	Routes []RouteSpec `yaml:"routes"`
}

// RouteSpec is one declared route.
type RouteSpec struct {
	Pattern       string      `yaml:"pattern"`
	Title         string      `yaml:"title"`
	RequiresAuth  bool        `yaml:"requires_auth"`
	Permissions   []string    `yaml:"permissions"`
	Icon          string      `yaml:"icon"`
	ShowInSidebar bool        `yaml:"show_in_sidebar"`
	Guards        []string    `yaml:"guards"`
	Handler       string      `yaml:"handler"`
	Children      []RouteSpec `yaml:"children"`
}

// Registry binds manifest handler and guard names to Go values.
type Registry struct {
	// Handlers maps handler names to screen handlers.
	Handlers map[string]router.Handler

	// Guards maps custom guard names to guards. Built-in names are
	// resolved before this map is consulted.
	Guards map[string]router.Guard
}

// Load parses a manifest from r.
func Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile parses a manifest from the file at path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// validate checks structural requirements before any build.
func (f *File) validate() error {
	if len(f.Routes) == 0 {
		return fmt.Errorf("manifest declares no routes")
	}
	return validateSpecs(f.Routes, "")
}

func validateSpecs(specs []RouteSpec, parent string) error {
	for _, spec := range specs {
		at := parent + spec.Pattern
		if spec.Pattern == "" && len(spec.Children) == 0 {
			return fmt.Errorf("route under %q has an empty pattern and no children", parent)
		}
		if spec.Pattern != "" && !strings.HasPrefix(spec.Pattern, "/") {
			return fmt.Errorf("route pattern %q must start with '/'", spec.Pattern)
		}
		if err := validateSpecs(spec.Children, at); err != nil {
			return err
		}
	}
	return nil
}

// Build resolves the manifest against the registry and returns the route
// tree for router.New. Unknown handler or guard names are errors.
//
// A non-empty BasePath is prepended to each top-level pattern here, so
// the compiled tree matches the prefixed paths the router produces when
// SetBasePath is in effect. Child patterns are untouched; they compose
// with their parent's prefixed pattern.
func (f *File) Build(reg *Registry) ([]*router.Route, error) {
	if reg == nil {
		reg = &Registry{}
	}
	routes, err := buildSpecs(f.Routes, reg)
	if err != nil {
		return nil, err
	}
	if f.BasePath != "" {
		for _, route := range routes {
			route.Pattern = f.BasePath + route.Pattern
		}
	}
	return routes, nil
}

func buildSpecs(specs []RouteSpec, reg *Registry) ([]*router.Route, error) {
	routes := make([]*router.Route, 0, len(specs))
	for _, spec := range specs {
		route, err := buildSpec(spec, reg)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, nil
}

func buildSpec(spec RouteSpec, reg *Registry) (*router.Route, error) {
	route := &router.Route{
		Pattern: spec.Pattern,
		Meta: router.Meta{
			Title:         spec.Title,
			RequiresAuth:  spec.RequiresAuth,
			Permissions:   spec.Permissions,
			Icon:          spec.Icon,
			ShowInSidebar: spec.ShowInSidebar,
		},
	}

	if spec.Handler != "" {
		handler, ok := reg.Handlers[spec.Handler]
		if !ok {
			return nil, fmt.Errorf("route %q: unknown handler %q", spec.Pattern, spec.Handler)
		}
		route.Handler = handler
	}

	for _, name := range spec.Guards {
		guard, err := resolveGuard(name, reg)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", spec.Pattern, err)
		}
		route.Guards = append(route.Guards, guard)
	}

	children, err := buildSpecs(spec.Children, reg)
	if err != nil {
		return nil, err
	}
	route.Children = children
	return route, nil
}

// resolveGuard maps a guard name to a guard value. "require_auth" and
// "role:<name>" are built in; anything else must be in the registry.
func resolveGuard(name string, reg *Registry) (router.Guard, error) {
	if name == "require_auth" {
		return router.RequireAuth(), nil
	}
	if role, ok := strings.CutPrefix(name, "role:"); ok {
		if role == "" {
			return nil, fmt.Errorf("guard %q names no role", name)
		}
		return router.RequireRole(role), nil
	}
	if guard, ok := reg.Guards[name]; ok {
		return guard, nil
	}
	return nil, fmt.Errorf("unknown guard %q", name)
}

// NewRouter builds a router directly from the manifest, applying its
// base path and history limit.
func (f *File) NewRouter(reg *Registry, opts ...router.Option) (*router.Router, error) {
	routes, err := f.Build(reg)
	if err != nil {
		return nil, err
	}

	if f.HistoryLimit > 0 {
		opts = append([]router.Option{router.WithHistoryLimit(f.HistoryLimit)}, opts...)
	}
	r := router.New(routes, opts...)
	if f.BasePath != "" {
		r.SetBasePath(f.BasePath)
	}
	return r, nil
}
