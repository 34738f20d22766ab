package pagination

import (
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParseQueryParams parses pagination parameters from the request query string.
//
// Query parameters:
//   - page: 1-based page number. A value of zero, a negative value, or an
//     unparsable value is treated as if the parameter had been omitted, so
//     `page=0` and `page=-3` return the same result set as no page at all.
//   - limit: items per page. Missing, unparsable, or non-positive values fall
//     back to the default; values above MaxLimit are clamped to MaxLimit.
//
// Malformed input never fails the request; the parameters degrade to their
// defaults instead.
func ParseQueryParams(r *http.Request, config Config) Params {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 1 {
			params.Page = page
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 1 {
			params.Limit = limit
		}
	}
	if params.Limit > config.MaxLimit {
		params.Limit = config.MaxLimit
	}

	return params
}
