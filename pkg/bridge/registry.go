// Package bridge exposes navigation routers to platform shells over an
// explicit process boundary.
//
// Routers are registered in a Registry and addressed by opaque handles;
// every boundary call names its handle, replacing any notion of a global
// singleton router. The HTTP surface (see Server) drives navigation,
// inspects state and history, and streams committed transitions over a
// WebSocket.
//
// A router itself is single-threaded; the bridge serializes all boundary
// calls per handle so concurrent shell requests cannot race on the
// history stack or current context.
package bridge

import (
	"sync"
	"time"

	"github.com/junction-ui/junction/pkg/router"
)

// Handle is an opaque identifier for a registered router.
type Handle uint64

// Navigator is the navigation surface the bridge drives. It is satisfied
// by *router.Router and by the pkg/middleware decorators.
type Navigator interface {
	Push(path string) error
	Replace(path string) error
	Back() error
	Forward() error
	HandleDeepLink(url string) error
}

// Event is one committed navigation transition as delivered to event
// stream subscribers.
type Event struct {
	Event string    `json:"event"`
	Path  string    `json:"path"`
	Title string    `json:"title,omitempty"`
	Time  time.Time `json:"time"`
}

// Registry maps handles to router instances. It is safe for concurrent
// use.
type Registry struct {
	mu      sync.Mutex
	next    Handle
	routers map[Handle]*instance
}

// instance pairs a router with its per-handle call lock and event hub.
// nav is the surface navigation calls go through; it defaults to the
// router itself and may be a decorated navigator.
type instance struct {
	mu     sync.Mutex // serializes all navigation calls for this router
	router *router.Router
	nav    Navigator
	hub    *hub
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routers: make(map[Handle]*instance),
	}
}

// Register adds a router and returns its handle. The registry subscribes
// to the router's committed transitions for event streaming; hosts should
// not navigate the router except through the bridge after registration.
func (g *Registry) Register(r *router.Router) Handle {
	return g.RegisterNavigator(r, r)
}

// RegisterNavigator adds a router whose navigation calls are routed
// through nav, typically a metrics or tracing decorator over r. State
// and history reads still come from r.
func (g *Registry) RegisterNavigator(r *router.Router, nav Navigator) Handle {
	inst := &instance{
		router: r,
		nav:    nav,
		hub:    newHub(),
	}
	r.OnNavigate(func(event router.Event, path string, ctx *router.Context) {
		var title string
		if route := r.CurrentRoute(); route != nil {
			title = route.Meta.Title
		}
		inst.hub.broadcast(Event{
			Event: event.String(),
			Path:  path,
			Title: title,
			Time:  time.Now(),
		})
	})

	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	handle := g.next
	g.routers[handle] = inst
	return handle
}

// Release removes a router from the registry and closes its event
// subscriptions. It reports whether the handle was registered.
func (g *Registry) Release(h Handle) bool {
	g.mu.Lock()
	inst, ok := g.routers[h]
	delete(g.routers, h)
	g.mu.Unlock()

	if ok {
		inst.hub.closeAll()
	}
	return ok
}

// Handles returns the currently registered handles.
func (g *Registry) Handles() []Handle {
	g.mu.Lock()
	defer g.mu.Unlock()
	handles := make([]Handle, 0, len(g.routers))
	for h := range g.routers {
		handles = append(handles, h)
	}
	return handles
}

// lookup returns the instance for a handle.
func (g *Registry) lookup(h Handle) (*instance, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	inst, ok := g.routers[h]
	return inst, ok
}

// hub fans committed transitions out to event stream subscribers.
type hub struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	closed bool
}

func newHub() *hub {
	return &hub{subs: make(map[chan Event]struct{})}
}

// subscribe registers a buffered event channel. It returns nil when the
// hub is already closed.
func (h *hub) subscribe() chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	ch := make(chan Event, 16)
	h.subs[ch] = struct{}{}
	return ch
}

// unsubscribe removes and closes a subscriber channel.
func (h *hub) unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

// broadcast delivers an event to all subscribers. Slow subscribers whose
// buffers are full miss the event rather than blocking navigation.
func (h *hub) broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// closeAll closes every subscription.
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
	h.closed = true
}
