package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested entity does not exist in storage.
var ErrNotFound = errors.New("entity not found")

// ErrInvalidInput indicates a value that the domain cannot interpret,
// such as an unknown field name.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports a constraint violation on a single article field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
