// Package postgres implements the article repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"article-cms/internal/domain/entity"
	"article-cms/internal/repository"

	"github.com/google/uuid"
)

// Executor is the subset of *sql.DB the repository needs. It is satisfied by
// both *sql.DB and *circuitbreaker.DBCircuitBreaker, so the repository can be
// wired with or without breaker protection.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type ArticleRepo struct {
	db Executor
}

func NewArticleRepo(db Executor) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

// List retrieves articles ordered by creation time descending.
func (repo *ArticleRepo) List(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT uuid, title, body, langcode, created
FROM articles
ORDER BY created DESC
LIMIT $1 OFFSET $2`

	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.UUID, &article.Title, &article.Body,
			&article.Langcode, &article.Created); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

// Count returns the total number of articles in the database.
func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// Get retrieves an article by UUID. Returns (nil, nil) when no row matches.
func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT uuid, title, body, langcode, created
FROM articles
WHERE uuid = $1`

	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&article.UUID,
		&article.Title, &article.Body, &article.Langcode, &article.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

// Create persists a new article. The UUID is generated here: the store owns
// identifier generation, callers never supply one.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (uuid, title, body, langcode, created)
VALUES ($1, $2, $3, $4, $5)`

	article.UUID = uuid.NewString()
	if _, err := repo.db.ExecContext(ctx, query, article.UUID, article.Title,
		article.Body, article.Langcode, article.Created); err != nil {
		article.UUID = ""
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Update overwrites the stored article with the supplied state (last write wins).
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles
SET title = $2, body = $3, langcode = $4, created = $5
WHERE uuid = $1`

	res, err := repo.db.ExecContext(ctx, query, article.UUID, article.Title,
		article.Body, article.Langcode, article.Created)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

// Delete removes an article by UUID.
func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM articles WHERE uuid = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
