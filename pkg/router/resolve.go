package router

import (
	"strings"

	"github.com/junction-ui/junction/pkg/urlparse"
)

// node is a compiled route. The full pattern segments (parent prefix plus
// the route's own pattern) are computed once at construction so resolution
// never concatenates strings.
type node struct {
	route    *Route
	segments []string
	children []*node
}

// compile builds the resolver tree from the user-supplied routes,
// preserving sibling order.
func compile(routes []*Route, prefix []string) []*node {
	nodes := make([]*node, 0, len(routes))
	for _, route := range routes {
		own := splitPath(route.Pattern)
		full := make([]string, 0, len(prefix)+len(own))
		full = append(full, prefix...)
		full = append(full, own...)

		nodes = append(nodes, &node{
			route:    route,
			segments: full,
			children: compile(route.Children, full),
		})
	}
	return nodes
}

// resolve searches the compiled tree depth-first in declaration order. A
// route's own pattern is tried before its children's composed patterns;
// the first match wins, so an earlier sibling's match is never displaced
// by a deeper one.
func resolve(nodes []*node, segments []string) (*Route, []urlparse.Param, bool) {
	for _, n := range nodes {
		if params, ok := matchSegments(n.segments, segments); ok {
			return n.route, params, true
		}
		if route, params, ok := resolve(n.children, segments); ok {
			return route, params, true
		}
	}
	return nil, nil, false
}

// walk visits every compiled node depth-first, passing the route and its
// full pattern.
func walk(nodes []*node, fn func(route *Route, fullPattern string)) {
	for _, n := range nodes {
		fn(n.route, "/"+strings.Join(n.segments, "/"))
		walk(n.children, fn)
	}
}
