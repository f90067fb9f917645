package router

import (
	"log/slog"
	"time"

	"github.com/junction-ui/junction/pkg/history"
	"github.com/junction-ui/junction/pkg/urlparse"
)

// DefaultRedirectLimit bounds chained guard redirects within one
// navigation call. Exceeding it fails the transaction as blocked instead
// of recursing through a guard cycle.
const DefaultRedirectLimit = 10

// Router turns navigation paths into resolved screens while maintaining
// back/forward history and enforcing route guards.
//
// A Router is not safe for concurrent use. One navigation transaction
// runs to completion, including all guard, listener, and handler
// invocations, before the call returns; hosts that expose a router across
// goroutines must serialize all navigation calls.
type Router struct {
	nodes     []*node
	hist      *history.Stack[any]
	listeners []Listener

	notFound NotFoundHandler
	basePath string

	logger        *slog.Logger
	redirectLimit int
	historyLimit  int
	clock         func() time.Time

	authenticated bool
	roles         []string
	payload       any

	currentPath  string
	current      *Context
	currentRoute *Route
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the router's logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithHistoryLimit sets the maximum number of history entries. The
// default is history.DefaultLimit.
func WithHistoryLimit(limit int) Option {
	return func(r *Router) {
		r.historyLimit = limit
	}
}

// WithClock sets the timestamp source for history entries. The default is
// time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Router) {
		r.clock = now
	}
}

// WithRedirectLimit sets the maximum number of chained guard redirects
// per navigation call. The default is DefaultRedirectLimit.
func WithRedirectLimit(limit int) Option {
	return func(r *Router) {
		r.redirectLimit = limit
	}
}

// New creates a router over the given route tree. The tree is compiled
// once and must not be mutated afterwards.
func New(routes []*Route, opts ...Option) *Router {
	r := &Router{
		logger:        slog.Default(),
		redirectLimit: DefaultRedirectLimit,
		historyLimit:  history.DefaultLimit,
		clock:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.nodes = compile(routes, nil)
	r.hist = history.New(r.historyLimit, history.WithClock[any](r.clock))
	return r
}

// SetBasePath sets a prefix prepended to every navigation path before
// parsing. It should be configured before navigation begins.
func (r *Router) SetBasePath(prefix string) {
	r.basePath = prefix
}

// SetNotFoundHandler registers a handler invoked when a path matches no
// route, before the transaction fails.
func (r *Router) SetNotFoundHandler(h NotFoundHandler) {
	r.notFound = h
}

// OnNavigate registers a durable listener invoked on every committed
// transition, in registration order.
func (r *Router) OnNavigate(l Listener) {
	r.listeners = append(r.listeners, l)
}

// SetAuth supplies the authentication state copied into each new
// navigation context.
func (r *Router) SetAuth(authenticated bool, roles ...string) {
	r.authenticated = authenticated
	r.roles = roles
}

// SetPayload supplies an opaque host value copied into each new
// navigation context. The router never reads it.
func (r *Router) SetPayload(payload any) {
	r.payload = payload
}

// Push navigates to path, recording a history entry on success.
func (r *Router) Push(path string) error {
	return r.navigate(path, EventPush, nil, 0)
}

// PushState navigates like Push and attaches an opaque state payload to
// the recorded history entry. The payload is carried by reference only.
func (r *Router) PushState(path string, state any) error {
	return r.navigate(path, EventPush, state, 0)
}

// Replace navigates to path without touching history.
func (r *Router) Replace(path string) error {
	return r.navigate(path, EventReplace, nil, 0)
}

// HandleDeepLink navigates to a URL delivered from outside the
// application's own UI, recording a history entry on success.
func (r *Router) HandleDeepLink(url string) error {
	return r.navigate(url, EventDeepLink, nil, 0)
}

// Back traverses to the previous history entry. It is a no-op success
// when there is no earlier entry. Guards are not re-evaluated on history
// traversal.
func (r *Router) Back() error {
	entry, ok := r.hist.Back()
	if !ok {
		return nil
	}
	return r.restore(entry.Path, EventBack)
}

// Forward traverses to the next history entry. It is a no-op success
// when there is no later entry. Guards are not re-evaluated on history
// traversal.
func (r *Router) Forward() error {
	entry, ok := r.hist.Forward()
	if !ok {
		return nil
	}
	return r.restore(entry.Path, EventForward)
}

// CanGoBack reports whether a Back call would traverse.
func (r *Router) CanGoBack() bool {
	return r.hist.CanGoBack()
}

// CanGoForward reports whether a Forward call would traverse.
func (r *Router) CanGoForward() bool {
	return r.hist.CanGoForward()
}

// CurrentPath returns the path of the last committed navigation, or the
// empty string before any navigation.
func (r *Router) CurrentPath() string {
	return r.currentPath
}

// Context returns the context of the last committed navigation, or nil
// before any navigation.
func (r *Router) Context() *Context {
	return r.current
}

// CurrentRoute returns the route of the last committed navigation, or
// nil before any navigation.
func (r *Router) CurrentRoute() *Route {
	return r.currentRoute
}

// HistorySnapshot returns a copy of the history entries and the current
// index (-1 when empty).
func (r *Router) HistorySnapshot() ([]history.Entry[any], int) {
	return r.hist.Entries(), r.hist.Index()
}

// Walk visits every route in resolution order, passing its full composed
// pattern.
func (r *Router) Walk(fn func(route *Route, fullPattern string)) {
	walk(r.nodes, fn)
}

// navigate runs one push/replace/deep-link transaction: parse, resolve,
// guard, then commit. hops counts chained guard redirects.
func (r *Router) navigate(path string, event Event, state any, hops int) error {
	full := path
	if r.basePath != "" {
		full = r.basePath + path
	}
	parsed := urlparse.Parse(full)

	route, params, ok := resolve(r.nodes, splitPath(parsed.Path))
	if !ok {
		if r.notFound != nil {
			r.notFound(&parsed)
		}
		r.logger.Debug("route not found", "path", path, "event", event.String())
		return &NavError{Kind: KindRouteNotFound, Path: path}
	}
	parsed.Params = params

	ctx := r.newContext(&parsed)

	for _, guard := range route.Guards {
		resp := guard.Evaluate(ctx)
		switch resp.Decision {
		case DecisionAllow:
			// Next guard.

		case DecisionDeny:
			r.logger.Info("navigation denied", "path", path, "reason", resp.Message)
			return &NavError{Kind: KindNavigationBlocked, Path: path, Message: resp.Message}

		case DecisionRedirect:
			if resp.RedirectTo == "" {
				return &NavError{Kind: KindNavigationBlocked, Path: path, Message: "redirect without target"}
			}
			if hops >= r.redirectLimit {
				r.logger.Warn("redirect limit exceeded", "path", path, "target", resp.RedirectTo)
				return &NavError{Kind: KindNavigationBlocked, Path: path, Message: "redirect limit exceeded"}
			}
			// The original transaction does not complete; the redirect
			// is a fresh replace navigation with its own guard run.
			return r.navigate(resp.RedirectTo, EventReplace, nil, hops+1)
		}
	}

	if event == EventPush || event == EventDeepLink {
		r.hist.Push(path, state)
	}
	r.commit(route, path, event, ctx)
	return nil
}

// restore re-resolves a stored history path after a back/forward
// traversal. History has already been repositioned; failure surfaces
// without further history mutation.
func (r *Router) restore(path string, event Event) error {
	full := path
	if r.basePath != "" {
		full = r.basePath + path
	}
	parsed := urlparse.Parse(full)

	route, params, ok := resolve(r.nodes, splitPath(parsed.Path))
	if !ok {
		if r.notFound != nil {
			r.notFound(&parsed)
		}
		return &NavError{Kind: KindRouteNotFound, Path: path}
	}
	parsed.Params = params

	r.commit(route, path, event, r.newContext(&parsed))
	return nil
}

// newContext builds a fresh transaction context carrying the host's
// current auth state and payload.
func (r *Router) newContext(url *urlparse.ParsedURL) *Context {
	return &Context{
		URL:           url,
		Router:        r,
		Payload:       r.payload,
		Authenticated: r.authenticated,
		Roles:         r.roles,
	}
}

// commit finalizes a successful transaction: current state, listeners in
// registration order, then the route handler.
func (r *Router) commit(route *Route, path string, event Event, ctx *Context) {
	r.currentPath = path
	r.current = ctx
	r.currentRoute = route

	for _, l := range r.listeners {
		l(event, path, ctx)
	}

	if route.Handler != nil {
		route.Handler(ctx)
	}
}
