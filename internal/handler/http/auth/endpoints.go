package auth

import "strings"

// PublicEndpoints defines endpoints that don't require authentication:
// orchestration health probes, Prometheus scraping, API docs, and the token
// endpoint itself (a token cannot be required to obtain one).
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/swagger/",
	"/auth/token",
}

// IsPublicEndpoint checks if a given path is a public endpoint.
//
// Endpoints ending with '/' use prefix matching (/swagger/ covers
// /swagger/index.html). Endpoints without one require an exact match, an
// optional trailing slash, or query parameters only, so /health matches
// /health?x=1 but neither /health/detail nor /healthcheck.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		if path == endpoint || path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
