package router

// Decision is the outcome variant of a guard response.
type Decision int

const (
	// DecisionAllow lets the pipeline continue to the next guard.
	DecisionAllow Decision = iota

	// DecisionDeny aborts the transaction as blocked.
	DecisionDeny

	// DecisionRedirect aborts the transaction and starts a replace
	// navigation to the response's target.
	DecisionRedirect
)

// Response is a guard's verdict. Exactly one decision is active;
// RedirectTo is meaningful only for DecisionRedirect and Message is
// optional for deny and redirect.
type Response struct {
	Decision   Decision
	RedirectTo string
	Message    string
}

// Allow returns a response that lets the navigation continue.
func Allow() Response {
	return Response{Decision: DecisionAllow}
}

// Deny returns a response that blocks the navigation.
func Deny(message string) Response {
	return Response{Decision: DecisionDeny, Message: message}
}

// Redirect returns a response that aborts the navigation and replaces it
// with a navigation to target.
func Redirect(target string) Response {
	return Response{Decision: DecisionRedirect, RedirectTo: target}
}

// Guard decides whether a navigation may commit. Guards run in
// declaration order and short-circuit on the first deny or redirect.
type Guard interface {
	Evaluate(ctx *Context) Response
}

// GuardFunc is a function adapter for Guard.
type GuardFunc func(ctx *Context) Response

// Evaluate implements Guard.
func (f GuardFunc) Evaluate(ctx *Context) Response {
	return f(ctx)
}

// DefaultLoginPath is the redirect target used by RequireAuth.
const DefaultLoginPath = "/login"

// RequireAuth returns a guard that redirects unauthenticated contexts to
// DefaultLoginPath.
func RequireAuth() Guard {
	return RequireAuthAt(DefaultLoginPath)
}

// RequireAuthAt returns a guard that redirects unauthenticated contexts
// to the given login path.
func RequireAuthAt(loginPath string) Guard {
	return GuardFunc(func(ctx *Context) Response {
		if ctx.Authenticated {
			return Allow()
		}
		return Redirect(loginPath)
	})
}

// RequireRole returns a guard that denies contexts lacking the given
// role.
func RequireRole(role string) Guard {
	return GuardFunc(func(ctx *Context) Response {
		if ctx.HasRole(role) {
			return Allow()
		}
		return Deny("insufficient permissions")
	})
}
