package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"contact_news/internal/domain"
)

type ChatStore struct {
	db *sqlx.DB
}

func NewChatStore(db *sqlx.DB) *ChatStore {
	return &ChatStore{db: db}
}

// InsertChatMessage appends a message to the contact's conversation and fills
// in its id and creation time.
func (s *ChatStore) InsertChatMessage(ctx context.Context, msg *domain.ChatMessage) error {
	var snapshot any
	if msg.ContextSnapshot != nil {
		data, err := json.Marshal(msg.ContextSnapshot)
		if err != nil {
			return fmt.Errorf("marshal context snapshot: %w", err)
		}
		snapshot = string(data)
	}

	query := `
		INSERT INTO contact_chat_messages (contact_id, user_id, role, content, context_snapshot)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return s.db.QueryRowxContext(ctx, query,
		msg.ContactID,
		msg.UserID,
		string(msg.Role),
		msg.Content,
		snapshot,
	).Scan(&msg.ID, &msg.CreatedAt)
}
