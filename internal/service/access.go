package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"contact_news/internal/domain"
)

// ContactAuthorizer answers "does this contact exist and belong to the
// caller". Missing and foreign contacts are indistinguishable to callers.
type ContactAuthorizer struct {
	contacts ContactStore
}

func NewContactAuthorizer(contacts ContactStore) *ContactAuthorizer {
	return &ContactAuthorizer{contacts: contacts}
}

func (a *ContactAuthorizer) Authorize(ctx context.Context, contactID, userID uuid.UUID) (*domain.Contact, error) {
	if contactID == uuid.Nil || userID == uuid.Nil {
		return nil, domain.ErrNotFoundOrUnauthorized
	}

	contact, err := a.contacts.GetContact(ctx, contactID)
	if errors.Is(err, domain.ErrContactNotFound) {
		return nil, domain.ErrNotFoundOrUnauthorized
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "get contact", Err: err}
	}
	if contact == nil || contact.UserID != userID {
		return nil, domain.ErrNotFoundOrUnauthorized
	}

	return contact, nil
}
