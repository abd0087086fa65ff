package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID              uuid.UUID
	ContactID       uuid.UUID
	UserID          uuid.UUID
	Role            ChatRole
	Content         string
	ContextSnapshot *ContactContext
	CreatedAt       time.Time
}

// ContactContext is the bounded view of a contact handed to the language
// model. It is never stored on its own, only as a message snapshot.
type ContactContext struct {
	Contact     ContextContact  `json:"contact"`
	Tags        []ContextTag    `json:"tags"`
	NotesRecent []ContextNote   `json:"notes_recent"`
	Reminders   []ContextRemind `json:"reminders"`
	NewsRecent  []ContextNews   `json:"news_recent"`
}

type ContextContact struct {
	Name                 string     `json:"name"`
	Position             *string    `json:"position"`
	CompanyName          *string    `json:"company_name"`
	LinkedinURL          *string    `json:"linkedin_url"`
	RelationshipSummary  *string    `json:"relationship_summary"`
	RelationshipPriority int        `json:"relationship_priority"`
	LastInteractionAt    *time.Time `json:"last_interaction_at"`
}

type ContextTag struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

type ContextNote struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	IsMeeting bool      `json:"is_meeting"`
	Text      string    `json:"text"`
}

type ContextRemind struct {
	ID    uuid.UUID  `json:"id"`
	DueAt *time.Time `json:"due_at"`
	Text  string     `json:"text"`
}

type ContextNews struct {
	ID    uuid.UUID `json:"id"`
	Date  time.Time `json:"date"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}
