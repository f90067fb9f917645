// Package router implements screen navigation for Junction application
// shells.
//
// The router provides:
//   - Pattern matching with literal, :param, and *wildcard segments
//   - Depth-first resolution over a nested route tree
//   - Ordered navigation guards with allow/deny/redirect semantics
//   - A bounded back/forward history with branch truncation
//   - Navigation listeners and deep-link entry
//
// # Patterns
//
// Route patterns are slash-delimited templates:
//
//	/users          literal segments, compared byte-for-byte
//	/users/:id      :id binds one path segment as a named parameter
//	/files/*name    *name binds exactly one path segment
//
// A wildcard segment matches a single segment, not a path suffix; segment
// counts of pattern and path must always be equal. A bare "*" binds its
// segment under the name "wildcard".
//
// # Nesting
//
// Routes form a tree supplied once at construction. A child's effective
// pattern is its parent's pattern concatenated with its own. Resolution is
// depth-first in declaration order: each route's own pattern is tried
// before its children's, and the first match wins.
//
// # Transactions
//
// One navigation call runs to completion, including all guard, listener,
// and handler invocations, before it returns. The router has no internal
// locking; hosts that share a router across goroutines must serialize
// navigation calls externally.
//
// # Usage
//
//	routes := []*router.Route{
//	    {Pattern: "/", Handler: showHome},
//	    {Pattern: "/users", Children: []*router.Route{
//	        {Pattern: "/:id", Handler: showUser},
//	    }},
//	    {Pattern: "/admin", Guards: []router.Guard{router.RequireRole("admin")}},
//	}
//
//	r := router.New(routes)
//	r.OnNavigate(func(ev router.Event, path string, ctx *router.Context) {
//	    log.Printf("%s -> %s", ev, path)
//	})
//
//	if err := r.Push("/users/123"); err != nil {
//	    // router.KindOf(err) describes the failure
//	}
package router
