package router

import "github.com/junction-ui/junction/pkg/urlparse"

// Event describes why a navigation transaction occurred.
type Event int

const (
	// EventPush is a forward navigation that records a history entry.
	EventPush Event = iota

	// EventReplace is a navigation that leaves history untouched.
	EventReplace

	// EventBack is a traversal to the previous history entry.
	EventBack

	// EventForward is a traversal to the next history entry.
	EventForward

	// EventDeepLink is a push initiated from outside the application's
	// own UI, such as an OS-level URL open.
	EventDeepLink
)

// String returns the event's wire name.
func (e Event) String() string {
	switch e {
	case EventPush:
		return "push"
	case EventReplace:
		return "replace"
	case EventBack:
		return "back"
	case EventForward:
		return "forward"
	case EventDeepLink:
		return "deep_link"
	default:
		return "unknown"
	}
}

// Listener observes committed navigations. Listeners run synchronously in
// registration order, after the history update and before the route
// handler.
type Listener func(event Event, path string, ctx *Context)

// NotFoundHandler observes navigations whose path matched no route. It
// runs before the transaction fails with KindRouteNotFound.
type NotFoundHandler func(url *urlparse.ParsedURL)
