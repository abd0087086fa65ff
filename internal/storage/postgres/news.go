package postgres

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"contact_news/internal/domain"
)

var newsColumns = []string{
	"id", "contact_id", "source", "title", "url", "summary",
	"published_at", "fetched_at", "topics", "created_at",
}

type NewsStore struct {
	db *sqlx.DB
}

func NewNewsStore(db *sqlx.DB) *NewsStore {
	return &NewsStore{db: db}
}

// InsertNews stores a new article. An article whose url is already stored for
// the contact is not overwritten; domain.ErrDuplicateArticle is returned.
func (s *NewsStore) InsertNews(ctx context.Context, article *domain.NewsArticle) (*domain.NewsArticle, error) {
	query := `
		INSERT INTO contact_news (
			contact_id, source, title, url, summary, published_at, fetched_at, topics
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (contact_id, url) DO NOTHING
		RETURNING id, contact_id, source, title, url, summary, published_at, fetched_at, topics, created_at`

	var saved domain.NewsArticle
	err := s.db.QueryRowxContext(ctx, query,
		article.ContactID,
		article.Source,
		article.Title,
		article.URL,
		article.Summary,
		article.PublishedAt,
		article.FetchedAt,
		article.Topics,
	).StructScan(&saved)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDuplicateArticle
	}
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func (s *NewsStore) FindNewsByURL(ctx context.Context, contactID uuid.UUID, url string) (*domain.NewsArticle, error) {
	return s.getOne(ctx, psql.Select(newsColumns...).
		From("contact_news").
		Where(sq.Eq{"contact_id": contactID, "url": url}).
		Limit(1))
}

// FindLatestNews returns the most recently fetched article, or nil when the
// contact has none.
func (s *NewsStore) FindLatestNews(ctx context.Context, contactID uuid.UUID) (*domain.NewsArticle, error) {
	return s.getOne(ctx, psql.Select(newsColumns...).
		From("contact_news").
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("fetched_at DESC").
		Limit(1))
}

func (s *NewsStore) ListRecentNews(ctx context.Context, contactID uuid.UUID, limit int) ([]domain.NewsArticle, error) {
	builder := psql.Select(newsColumns...).
		From("contact_news").
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("published_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var articles []domain.NewsArticle
	if err := s.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *NewsStore) getOne(ctx context.Context, builder sq.SelectBuilder) (*domain.NewsArticle, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var article domain.NewsArticle
	err = s.db.GetContext(ctx, &article, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}
