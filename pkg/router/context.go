package router

import "github.com/junction-ui/junction/pkg/urlparse"

// Context is the per-transaction navigation context handed to guards,
// listeners, and handlers. It is created fresh for each transaction and
// must not be retained past the handler invocations; the router keeps the
// last committed context for inspection via Router.Context.
type Context struct {
	// URL is the parsed target, including extracted route parameters.
	URL *urlparse.ParsedURL

	// Router is the router running this transaction.
	Router *Router

	// Payload is an opaque host value. The router never reads or copies
	// it; it is pure pass-through from SetPayload.
	Payload any

	// Authenticated reflects the host's authentication state as supplied
	// by SetAuth.
	Authenticated bool

	// Roles are the host-supplied role names for the current principal.
	Roles []string
}

// HasRole reports whether the context carries the given role.
func (c *Context) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Param returns the value of the named route parameter.
func (c *Context) Param(name string) (string, bool) {
	return c.URL.Param(name)
}

// QueryValue returns the value of the first query parameter with the
// given key.
func (c *Context) QueryValue(key string) (string, bool) {
	return c.URL.QueryValue(key)
}
