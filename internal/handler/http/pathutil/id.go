package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidUUID is returned when the identifier in the URL path is not a
// well-formed UUID.
var ErrInvalidUUID = errors.New("invalid article identifier")

// ExtractUUID extracts and validates a UUID from a URL path.
// It removes the given prefix and parses the remaining segment.
//
// Example:
//
//	id, err := ExtractUUID("/articles/6ba7b810-9dad-11d1-80b4-00c04fd430c8", "/articles/")
func ExtractUUID(path, prefix string) (string, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idStr == "" || strings.Contains(idStr, "/") {
		return "", ErrInvalidUUID
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return "", ErrInvalidUUID
	}
	return id.String(), nil
}
