// Package pathutil provides URL path helpers shared by the HTTP handlers:
// identifier extraction and path normalization for metrics labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidSegment = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific,
// pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/` + uuidSegment + `$`), Template: "/articles/:uuid"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. It converts paths carrying identifiers
// (e.g. /articles/6ba7b810-...) to template form (/articles/:uuid).
// Static paths remain unchanged, as do query strings and trailing slashes:
//
//	NormalizePath("/articles/6ba7b810-9dad-11d1-80b4-00c04fd430c8") // "/articles/:uuid"
//	NormalizePath("/articles?page=2")                               // "/articles"
//	NormalizePath("/healthz")                                       // "/healthz"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
