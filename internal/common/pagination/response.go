package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., article.ListItemDTO).
type Response[T any] struct {
	Items      []T      `json:"items"`      // Array of data items for the current page
	Pagination Metadata `json:"pagination"` // Pagination metadata (total, page, limit, etc.)
}

// NewResponse creates a new paginated response with items and metadata.
func NewResponse[T any](items []T, metadata Metadata) Response[T] {
	return Response[T]{
		Items:      items,
		Pagination: metadata,
	}
}
