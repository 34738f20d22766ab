package entity

import (
	"fmt"
	"time"
)

// Field size limits. Titles follow the usual content-label limit; bodies are
// capped to keep payloads and storage rows bounded.
const (
	maxTitleLength    = 255
	maxBodyLength     = 65535
	maxLangcodeLength = 12
)

// ValidateArticle checks an article against its field rules.
// When fields are given, only those fields are validated; this is how patch
// operations validate just the fields that actually changed. With no fields,
// the whole entity is validated.
// Returns a ValidationError describing the first violation found.
func ValidateArticle(a *Article, fields ...string) error {
	if len(fields) == 0 {
		fields = ArticleFields
	}
	for _, name := range fields {
		if err := validateArticleField(a, name); err != nil {
			return err
		}
	}
	return nil
}

func validateArticleField(a *Article, name string) error {
	switch name {
	case FieldTitle:
		if a.Title == "" {
			return &ValidationError{Field: FieldTitle, Message: "is required"}
		}
		if len(a.Title) > maxTitleLength {
			return &ValidationError{
				Field:   FieldTitle,
				Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
			}
		}
	case FieldBody:
		if len(a.Body) > maxBodyLength {
			return &ValidationError{
				Field:   FieldBody,
				Message: fmt.Sprintf("must not exceed %d characters", maxBodyLength),
			}
		}
	case FieldLangcode:
		if a.Langcode == "" {
			return nil
		}
		if err := validateLangcode(a.Langcode); err != nil {
			return err
		}
	case FieldCreated:
		if a.Created.IsZero() {
			return nil
		}
		// Allow a small amount of clock skew for clients that stamp entities themselves.
		if a.Created.After(time.Now().Add(5 * time.Minute)) {
			return &ValidationError{Field: FieldCreated, Message: "cannot be in the future"}
		}
	default:
		return &ValidationError{Field: name, Message: "is not a known field"}
	}
	return nil
}

// validateLangcode checks that a language code looks like an IETF tag,
// e.g. "en", "ja" or "pt-br". Lowercase letters and at most one dash.
func validateLangcode(code string) error {
	invalid := &ValidationError{
		Field:   FieldLangcode,
		Message: "must be a language tag such as 'en' or 'pt-br'",
	}
	if len(code) < 2 || len(code) > maxLangcodeLength {
		return invalid
	}
	dashes := 0
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c == '-' {
			dashes++
			if dashes > 1 || i == 0 || i == len(code)-1 {
				return invalid
			}
			continue
		}
		if c < 'a' || c > 'z' {
			return invalid
		}
	}
	return nil
}
