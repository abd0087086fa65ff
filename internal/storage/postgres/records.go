package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"contact_news/internal/domain"
)

// RecordStore reads the CRM records that make up a contact's chat context.
type RecordStore struct {
	db *sqlx.DB
}

func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

func (s *RecordStore) ListTags(ctx context.Context, contactID uuid.UUID, limit int) ([]domain.ContactTag, error) {
	builder := psql.Select("COALESCE(t.name, '') AS name", "ct.priority").
		From("contact_tags ct").
		LeftJoin("tags t ON t.id = ct.tag_id").
		Where(sq.Eq{"ct.contact_id": contactID}).
		OrderBy("ct.priority DESC")

	var tags []domain.ContactTag
	if err := s.selectLimited(ctx, &tags, builder, limit); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *RecordStore) ListNotes(ctx context.Context, contactID uuid.UUID, limit int) ([]domain.ContactNote, error) {
	builder := psql.Select("id", "content", "is_meeting", "occurred_at", "created_at").
		From("contact_notes").
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("occurred_at DESC NULLS LAST", "created_at DESC")

	var notes []domain.ContactNote
	if err := s.selectLimited(ctx, &notes, builder, limit); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *RecordStore) ListReminders(ctx context.Context, contactID uuid.UUID, limit int) ([]domain.ContactReminder, error) {
	builder := psql.Select("id", "body", "due_at").
		From("contact_reminders").
		Where(sq.Eq{"contact_id": contactID}).
		OrderBy("due_at ASC NULLS LAST", "created_at")

	var reminders []domain.ContactReminder
	if err := s.selectLimited(ctx, &reminders, builder, limit); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (s *RecordStore) selectLimited(ctx context.Context, dest any, builder sq.SelectBuilder, limit int) error {
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	return s.db.SelectContext(ctx, dest, query, args...)
}
