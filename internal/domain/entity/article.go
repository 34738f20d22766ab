// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article content entity, its field accessors, and the
// domain-specific errors raised by validation.
package entity

import (
	"fmt"
	"time"
)

// TypeArticle is the only content type this service accepts or returns.
const TypeArticle = "article"

// Field names addressable on an Article. The UUID is deliberately absent:
// it is generated by the store at creation and never mutated afterwards.
const (
	FieldTitle    = "title"
	FieldBody     = "body"
	FieldLangcode = "langcode"
	FieldCreated  = "created"
)

// ArticleFields lists the patchable fields in a stable order.
// Iterating this slice instead of a map keeps field processing deterministic.
var ArticleFields = []string{FieldTitle, FieldBody, FieldLangcode, FieldCreated}

// Article represents a single article content record.
// The UUID is the stable external identifier; it is assigned by the
// repository when the article is first persisted.
type Article struct {
	UUID     string
	Title    string
	Body     string
	Langcode string
	Created  time.Time
}

// Label returns the human-readable label of the article.
func (a *Article) Label() string {
	return a.Title
}

// IsNew reports whether the article has been persisted yet.
func (a *Article) IsNew() bool {
	return a.UUID == ""
}

// FieldValue returns the canonical string value of the named field.
// Timestamps are rendered in RFC3339 so that values round-trip through
// SetFieldValue unchanged. The second return value is false for unknown
// field names.
func (a *Article) FieldValue(name string) (string, bool) {
	switch name {
	case FieldTitle:
		return a.Title, true
	case FieldBody:
		return a.Body, true
	case FieldLangcode:
		return a.Langcode, true
	case FieldCreated:
		if a.Created.IsZero() {
			return "", true
		}
		return a.Created.UTC().Format(time.RFC3339), true
	}
	return "", false
}

// SetFieldValue assigns the canonical string value to the named field.
// The created field expects an RFC3339 timestamp.
func (a *Article) SetFieldValue(name, value string) error {
	switch name {
	case FieldTitle:
		a.Title = value
	case FieldBody:
		a.Body = value
	case FieldLangcode:
		a.Langcode = value
	case FieldCreated:
		if value == "" {
			a.Created = time.Time{}
			return nil
		}
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return &ValidationError{Field: FieldCreated, Message: "must be an RFC3339 timestamp"}
		}
		a.Created = t.UTC()
	default:
		return fmt.Errorf("unknown field %q: %w", name, ErrInvalidInput)
	}
	return nil
}

// Clone returns a deep copy of the article.
// Patch operations mutate a copy so that a failed validation never leaves
// a half-applied entity behind.
func (a *Article) Clone() *Article {
	c := *a
	return &c
}
