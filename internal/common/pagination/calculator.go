package pagination

// CalculateOffset calculates the database OFFSET value based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
func CalculateOffset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages based on total items and limit.
// Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If total < limit, returns 1
//   - Otherwise, returns ceil(total / limit)
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1 // Always at least 1 page
	}
	// Ceiling division: (total + limit - 1) / limit
	return int((total + int64(limit) - 1) / int64(limit))
}
