// Package memory implements the article repository in process memory.
// It backs handler tests and local development without a database.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"article-cms/internal/domain/entity"
	"article-cms/internal/repository"

	"github.com/google/uuid"
)

// ArticleRepo is an in-memory implementation of repository.ArticleRepository.
// Safe for concurrent use.
type ArticleRepo struct {
	mu       sync.RWMutex
	articles map[string]*entity.Article
}

// NewArticleRepo creates a new in-memory article repository.
func NewArticleRepo() *ArticleRepo {
	return &ArticleRepo{articles: make(map[string]*entity.Article)}
}

// List retrieves articles ordered by creation time descending.
func (r *ArticleRepo) List(_ context.Context, offset, limit int) ([]*entity.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entity.Article, 0, len(r.articles))
	for _, a := range r.articles {
		all = append(all, a.Clone())
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Created.After(all[j].Created)
	})

	if offset >= len(all) {
		return []*entity.Article{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// Count returns the total number of stored articles.
func (r *ArticleRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.articles)), nil
}

// Get retrieves an article by UUID. Returns (nil, nil) when absent.
func (r *ArticleRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	return a.Clone(), nil
}

// Create stores a new article and assigns its UUID.
func (r *ArticleRepo) Create(_ context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	article.UUID = uuid.NewString()
	r.articles[article.UUID] = article.Clone()
	return nil
}

// Update overwrites an existing article.
func (r *ArticleRepo) Update(_ context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[article.UUID]; !ok {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	r.articles[article.UUID] = article.Clone()
	return nil
}

// Delete removes an article by UUID.
func (r *ArticleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.articles, id)
	return nil
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)
