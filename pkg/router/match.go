package router

import (
	"strings"

	"github.com/junction-ui/junction/pkg/urlparse"
)

// wildcardName is the parameter name used for a bare "*" segment.
const wildcardName = "wildcard"

// Match tests a single route pattern against a path and returns the
// extracted parameters. Both strings are slash-delimited; leading and
// trailing slashes are ignored.
func Match(pattern, path string) ([]urlparse.Param, bool) {
	return matchSegments(splitPath(pattern), splitPath(path))
}

// matchSegments walks pattern and path segments in lock-step. Segment
// counts must be equal: there are no optional or suffix-consuming
// segments.
func matchSegments(pattern, path []string) ([]urlparse.Param, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}

	var params []urlparse.Param
	for i, seg := range pattern {
		switch {
		case strings.HasPrefix(seg, ":"):
			params = append(params, urlparse.Param{
				Name:  seg[1:],
				Value: path[i],
			})

		case strings.HasPrefix(seg, "*"):
			// A wildcard binds exactly one segment.
			name := seg[1:]
			if name == "" {
				name = wildcardName
			}
			params = append(params, urlparse.Param{
				Name:  name,
				Value: path[i],
			})

		default:
			if seg != path[i] {
				return nil, false
			}
		}
	}
	return params, true
}

// splitPath splits a path into segments.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
