package router

// Handler renders the screen for a matched route. It runs last in a
// navigation transaction, after history and listeners have been updated.
type Handler func(ctx *Context)

// Meta carries display and access metadata for a route.
type Meta struct {
	// Title is the human-readable screen title.
	Title string

	// RequiresAuth marks the route as needing an authenticated context.
	// It is informational; enforcement happens through Guards.
	RequiresAuth bool

	// Permissions lists the permission names associated with the route.
	Permissions []string

	// Icon is an optional icon name for navigation chrome.
	Icon string

	// ShowInSidebar marks the route for inclusion in sidebar navigation.
	ShowInSidebar bool
}

// Route is one node of the route tree supplied to New.
//
// The tree is owned by the application and must not be mutated after
// construction; the router compiles it once and never writes to it.
type Route struct {
	// Pattern is the route's path template, relative to its parent.
	Pattern string

	// Handler is the screen handler, invoked when the route commits.
	// Routes that exist only to group children may leave it nil.
	Handler Handler

	// Guards are evaluated in order before a navigation to this route
	// commits.
	Guards []Guard

	// Children are nested routes. A child's effective pattern is this
	// route's pattern concatenated with the child's own.
	Children []*Route

	// Meta is optional display and access metadata.
	Meta Meta
}
