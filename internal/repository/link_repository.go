package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/PrajwalKusha/LinkSenseAI-App/internal/apperrs"
	"github.com/PrajwalKusha/LinkSenseAI-App/internal/entities"
)

// LinkRepository defines the interface for short link database operations.
// There is deliberately no update or delete: records are immutable after insert.
type LinkRepository interface {
	Create(ctx context.Context, link *entities.ShortLink) (*entities.ShortLink, error)
	FindByShortCode(ctx context.Context, shortCode string) (*entities.ShortLink, error)
	FindByURL(ctx context.Context, originalURL string) (*entities.ShortLink, error)
}

type linkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new link repository backed by PostgreSQL.
func NewLinkRepository(db *sql.DB) LinkRepository {
	return &linkRepository{db: db}
}

// Create inserts a new short link. A primary key collision on short_code is
// reported as apperrs.ErrDuplicateKey so the caller can regenerate the code.
func (r *linkRepository) Create(ctx context.Context, link *entities.ShortLink) (*entities.ShortLink, error) {
	query := `
		INSERT INTO short_links (short_code, original_url, title, summary, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING short_code, original_url, title, summary, created_at
	`

	var stored entities.ShortLink
	err := r.db.QueryRowContext(ctx, query,
		link.ShortCode,
		link.OriginalURL,
		link.Title,
		link.Summary,
		link.CreatedAt.UTC(),
	).Scan(
		&stored.ShortCode,
		&stored.OriginalURL,
		&stored.Title,
		&stored.Summary,
		&stored.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, apperrs.ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create short link: %w", err)
	}

	return &stored, nil
}

// FindByShortCode finds a link by its short code.
func (r *linkRepository) FindByShortCode(ctx context.Context, shortCode string) (*entities.ShortLink, error) {
	query := `
		SELECT short_code, original_url, title, summary, created_at
		FROM short_links
		WHERE short_code = $1
	`
	return r.findOne(ctx, query, shortCode)
}

// FindByURL finds a link by exact original URL match. When the same URL was
// stored more than once (concurrent first writers), the oldest record wins.
func (r *linkRepository) FindByURL(ctx context.Context, originalURL string) (*entities.ShortLink, error) {
	query := `
		SELECT short_code, original_url, title, summary, created_at
		FROM short_links
		WHERE original_url = $1
		ORDER BY created_at ASC
		LIMIT 1
	`
	return r.findOne(ctx, query, originalURL)
}

func (r *linkRepository) findOne(ctx context.Context, query string, arg any) (*entities.ShortLink, error) {
	var link entities.ShortLink
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&link.ShortCode,
		&link.OriginalURL,
		&link.Title,
		&link.Summary,
		&link.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrs.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find short link: %w", err)
	}

	return &link, nil
}
