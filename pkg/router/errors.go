package router

import (
	"errors"
	"fmt"
)

// Kind classifies a navigation failure.
type Kind int

const (
	// KindNone is the zero Kind, reported for errors that are not
	// navigation errors.
	KindNone Kind = iota

	// KindRouteNotFound means no pattern in the route tree matched.
	KindRouteNotFound

	// KindNavigationBlocked means a guard denied the navigation, a
	// redirect had no usable target, or the redirect hop limit was
	// exceeded.
	KindNavigationBlocked

	// KindInvalidPath means the navigation path could not be parsed or
	// was rejected before resolution.
	KindInvalidPath

	// KindInternal covers faults outside the navigation contract, such
	// as malformed boundary requests.
	KindInternal
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case KindRouteNotFound:
		return "route_not_found"
	case KindNavigationBlocked:
		return "navigation_blocked"
	case KindInvalidPath:
		return "invalid_path"
	case KindInternal:
		return "internal"
	default:
		return "none"
	}
}

// NavError is a failed navigation transaction. The router's state is
// unchanged by a failed transaction, so the error is always recoverable
// at the call site.
type NavError struct {
	Kind    Kind
	Path    string
	Message string
}

// Error implements error.
func (e *NavError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("navigation to %q failed: %s: %s", e.Path, e.Kind, e.Message)
	}
	return fmt.Sprintf("navigation to %q failed: %s", e.Path, e.Kind)
}

// KindOf returns the navigation failure kind of err, or KindNone when err
// is not a NavError.
func KindOf(err error) Kind {
	var navErr *NavError
	if errors.As(err, &navErr) {
		return navErr.Kind
	}
	return KindNone
}
