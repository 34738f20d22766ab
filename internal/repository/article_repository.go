// Package repository defines the persistence interfaces the use cases
// depend on. Concrete implementations live under internal/infra.
package repository

import (
	"context"

	"article-cms/internal/domain/entity"
)

// ArticleRepository is the entity store for article records.
//
// Lookup methods return (nil, nil) when no record matches; callers translate
// that into their own not-found errors. Create assigns the article's UUID:
// the identifier is generated by the store and is never client-supplied.
type ArticleRepository interface {
	// List retrieves articles ordered by creation time descending.
	// Uses LIMIT and OFFSET for pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.Article, error)
	// Count returns the total number of articles.
	// This is used for calculating pagination metadata (total pages, etc.).
	Count(ctx context.Context) (int64, error)
	// Get retrieves an article by its UUID. Returns (nil, nil) if absent.
	Get(ctx context.Context, uuid string) (*entity.Article, error)
	// Create persists a new article and assigns its UUID.
	Create(ctx context.Context, article *entity.Article) error
	// Update overwrites the stored article with the caller-supplied state.
	// Last write wins; no version check is performed.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes an article by its UUID.
	Delete(ctx context.Context, uuid string) error
}
