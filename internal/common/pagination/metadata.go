package pagination

// Metadata describes the page window returned by a list endpoint.
type Metadata struct {
	Total      int64 `json:"total"`       // Total items across all pages
	Page       int   `json:"page"`        // Current page number (1-based)
	Limit      int   `json:"limit"`       // Items per page
	TotalPages int   `json:"total_pages"` // Pages needed for Total at Limit
}
