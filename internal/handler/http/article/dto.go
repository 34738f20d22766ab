// Package article provides HTTP handlers for the article content endpoints:
// listing, creating, patching, and deleting articles.
package article

import (
	"errors"
	"net/http"
	"time"

	"article-cms/internal/domain/entity"
	artUC "article-cms/internal/usecase/article"
)

// listCreatedFormat is the timestamp layout used in list responses.
// Minute precision, always UTC.
const listCreatedFormat = "2006-01-02 15:04"

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	Type     string `json:"type" example:"article"`
	UUID     string `json:"uuid" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	Title    string `json:"title" example:"Go 1.23 リリース"`
	Body     string `json:"body" example:"Go 1.23 がリリースされました。新機能には..."`
	Langcode string `json:"langcode" example:"ja"`
	Created  string `json:"created" example:"2025-10-26T10:00:00Z"`
}

// toDTO renders an article with its full-precision creation timestamp,
// as returned by the create and patch endpoints.
func toDTO(a *entity.Article) DTO {
	return DTO{
		Type:     entity.TypeArticle,
		UUID:     a.UUID,
		Title:    a.Title,
		Body:     a.Body,
		Langcode: a.Langcode,
		Created:  a.Created.UTC().Format(time.RFC3339),
	}
}

// ListItemDTO is the compact shape of an article in list responses: the
// identifier, a display label, and the creation time at minute precision.
type ListItemDTO struct {
	UUID    string `json:"uuid" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	Label   string `json:"label" example:"Go 1.23 リリース"`
	Created string `json:"created" example:"2025-10-26 10:00"`
}

func toListDTO(a *entity.Article) ListItemDTO {
	return ListItemDTO{
		UUID:    a.UUID,
		Label:   a.Label(),
		Created: a.Created.UTC().Format(listCreatedFormat),
	}
}

// articlePayload is the JSON body of create and patch requests. Pointer
// fields distinguish an omitted field from one submitted with its zero
// value; a patch must only touch the fields the client actually sent.
type articlePayload struct {
	Type     *string `json:"type"`
	UUID     *string `json:"uuid"`
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Langcode *string `json:"langcode"`
	Created  *string `json:"created"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fields returns the content field values present in the payload.
func (p *articlePayload) fields() map[string]string {
	m := make(map[string]string, 4)
	if p.Title != nil {
		m[entity.FieldTitle] = *p.Title
	}
	if p.Body != nil {
		m[entity.FieldBody] = *p.Body
	}
	if p.Langcode != nil {
		m[entity.FieldLangcode] = *p.Langcode
	}
	if p.Created != nil {
		m[entity.FieldCreated] = *p.Created
	}
	return m
}

// submitted returns the names of the content fields present in the payload,
// in the canonical field order.
func (p *articlePayload) submitted() []string {
	names := make([]string, 0, 4)
	for name := range p.fields() {
		names = append(names, name)
	}
	// Stable order matters for deterministic error reporting.
	ordered := make([]string, 0, len(names))
	for _, name := range entity.ArticleFields {
		for _, got := range names {
			if got == name {
				ordered = append(ordered, name)
			}
		}
	}
	return ordered
}

// errInvalidSession reports a protected route reached without an account on
// the context, which means the auth middleware was not in front of it.
var errInvalidSession = errors.New("authentication required")

// statusFor maps use case errors to HTTP status codes. A missing article
// reports 400 rather than 404, matching the established behavior of this
// endpoint; anything unrecognized is a 500.
func statusFor(err error) int {
	var denied *artUC.AccessDeniedError
	if errors.As(err, &denied) {
		return http.StatusForbidden
	}
	var bad *artUC.BadRequestError
	if errors.As(err, &bad) {
		return http.StatusBadRequest
	}
	if errors.Is(err, artUC.ErrArticleNotFound) {
		return http.StatusBadRequest
	}
	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
