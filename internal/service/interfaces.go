package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"contact_news/internal/domain"
)

type ContactStore interface {
	GetContact(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	QueryHighPriorityContacts(ctx context.Context, minPriority, limit int) ([]domain.Contact, error)
}

type NewsStore interface {
	FindLatestNews(ctx context.Context, contactID uuid.UUID) (*domain.NewsArticle, error)
	FindNewsByURL(ctx context.Context, contactID uuid.UUID, url string) (*domain.NewsArticle, error)
	InsertNews(ctx context.Context, article *domain.NewsArticle) (*domain.NewsArticle, error)
	ListRecentNews(ctx context.Context, contactID uuid.UUID, limit int) ([]domain.NewsArticle, error)
}

type ContextStore interface {
	ListTags(ctx context.Context, contactID uuid.UUID, limit int) ([]domain.ContactTag, error)
	ListNotes(ctx context.Context, contactID uuid.UUID, limit int) ([]domain.ContactNote, error)
	ListReminders(ctx context.Context, contactID uuid.UUID, limit int) ([]domain.ContactReminder, error)
}

type ChatStore interface {
	InsertChatMessage(ctx context.Context, msg *domain.ChatMessage) error
}

type NewsProvider interface {
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error)
}

type LLMProvider interface {
	Complete(ctx context.Context, systemPrompt, contextPayload, userMessage string, temperature float64) (string, error)
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.NewsArticle) error
	Close() error
}

type NewsFetcher interface {
	FetchNews(ctx context.Context, contactID, ownerUserID uuid.UUID) (*domain.FetchResult, error)
}
