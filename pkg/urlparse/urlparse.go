// Package urlparse splits raw navigation paths into path, query, and
// fragment components.
//
// The parser is deliberately small: it performs no percent-decoding and no
// validation beyond locating the '#' and '?' separators. Query parameters
// are kept in appearance order and duplicate keys are retained, so callers
// can implement their own precedence rules.
package urlparse

import "strings"

// Param is a single route parameter extracted during pattern matching.
// Params are ordered by their position in the route pattern.
type Param struct {
	Name  string
	Value string
}

// QueryParam is a single key/value pair from the query string.
// QueryParams are ordered by their appearance in the URL.
type QueryParam struct {
	Key   string
	Value string
}

// ParsedURL is the result of parsing a navigation path.
type ParsedURL struct {
	// Path is the bare path, without query string or fragment.
	Path string

	// Params are the route parameters filled in by the router after a
	// successful pattern match. Parse itself leaves this nil.
	Params []Param

	// Query holds the query parameters in appearance order.
	Query []QueryParam

	// Fragment is the part after the first '#', without the '#' itself.
	Fragment string
}

// Parse splits a raw path/URL string into its components.
//
// Everything after the first '#' is the fragment. Everything after the
// first '?' (but before the fragment) is the query string, which is split
// on '&'; each non-empty piece is split on its first '='. Pieces without
// an '=' are dropped.
func Parse(raw string) ParsedURL {
	var parsed ParsedURL

	rest := raw
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		parsed.Fragment = rest[i+1:]
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		parsed.Query = parseQuery(rest[i+1:])
		rest = rest[:i]
	}

	parsed.Path = rest
	return parsed
}

// parseQuery splits a query string into ordered key/value pairs.
func parseQuery(query string) []QueryParam {
	if query == "" {
		return nil
	}

	var params []QueryParam
	for _, piece := range strings.Split(query, "&") {
		if piece == "" {
			continue
		}
		eq := strings.IndexByte(piece, '=')
		if eq < 0 {
			// No '=' means no value; the pair is dropped.
			continue
		}
		params = append(params, QueryParam{
			Key:   piece[:eq],
			Value: piece[eq+1:],
		})
	}
	return params
}

// Param returns the value of the named route parameter and whether it was
// present.
func (u *ParsedURL) Param(name string) (string, bool) {
	for _, p := range u.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// QueryValue returns the value of the first query parameter with the given
// key and whether it was present.
func (u *ParsedURL) QueryValue(key string) (string, bool) {
	for _, q := range u.Query {
		if q.Key == key {
			return q.Value, true
		}
	}
	return "", false
}
