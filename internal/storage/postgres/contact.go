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

var contactColumns = []string{
	"id", "user_id", "full_name", "position", "company_name", "linkedin_url",
	"relationship_summary", "relationship_priority", "last_interaction_at",
}

type ContactStore struct {
	db *sqlx.DB
}

func NewContactStore(db *sqlx.DB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) GetContact(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	query, args, err := psql.Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var contact domain.Contact
	err = s.db.GetContext(ctx, &contact, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// QueryHighPriorityContacts returns contacts at or above minPriority that
// have a non-blank company, highest priority first.
func (s *ContactStore) QueryHighPriorityContacts(ctx context.Context, minPriority, limit int) ([]domain.Contact, error) {
	builder := psql.Select(contactColumns...).
		From("contacts").
		Where(sq.GtOrEq{"relationship_priority": minPriority}).
		Where(sq.NotEq{"company_name": nil}).
		Where("btrim(company_name) <> ''").
		OrderBy("relationship_priority DESC", "last_interaction_at DESC NULLS LAST", "id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var contacts []domain.Contact
	if err := s.db.SelectContext(ctx, &contacts, query, args...); err != nil {
		return nil, err
	}
	return contacts, nil
}
