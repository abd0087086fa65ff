package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID                   uuid.UUID  `db:"id"`
	UserID               uuid.UUID  `db:"user_id"`
	FullName             string     `db:"full_name"`
	Position             *string    `db:"position"`
	CompanyName          *string    `db:"company_name"`
	LinkedinURL          *string    `db:"linkedin_url"`
	RelationshipSummary  *string    `db:"relationship_summary"`
	RelationshipPriority int        `db:"relationship_priority"`
	LastInteractionAt    *time.Time `db:"last_interaction_at"`
}

// Company returns the trimmed company name, or "" when unset.
func (c *Contact) Company() string {
	if c.CompanyName == nil {
		return ""
	}
	return strings.TrimSpace(*c.CompanyName)
}

// SearchQuery is the term used against the news provider: the company when
// present, otherwise the person's name.
func (c *Contact) SearchQuery() string {
	if company := c.Company(); company != "" {
		return company
	}
	return strings.TrimSpace(c.FullName)
}

type ContactTag struct {
	Name     string `db:"name"`
	Priority int    `db:"priority"`
}

type ContactNote struct {
	ID         uuid.UUID  `db:"id"`
	Content    string     `db:"content"`
	IsMeeting  bool       `db:"is_meeting"`
	OccurredAt *time.Time `db:"occurred_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Date is when the note happened, falling back to when it was written.
func (n *ContactNote) Date() time.Time {
	if n.OccurredAt != nil {
		return *n.OccurredAt
	}
	return n.CreatedAt
}

type ContactReminder struct {
	ID    uuid.UUID  `db:"id"`
	Body  string     `db:"body"`
	DueAt *time.Time `db:"due_at"`
}
