package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const UnknownSource = "Unknown"

type NewsArticle struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	ContactID   uuid.UUID      `db:"contact_id" json:"contact_id"`
	Source      string         `db:"source" json:"source"`
	Title       string         `db:"title" json:"title"`
	URL         string         `db:"url" json:"url"`
	Summary     string         `db:"summary" json:"summary"`
	PublishedAt time.Time      `db:"published_at" json:"published_at"`
	FetchedAt   time.Time      `db:"fetched_at" json:"fetched_at"`
	Topics      pq.StringArray `db:"topics" json:"topics"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// ProviderArticle is an article as reported by the news provider, before it
// is attached to a contact.
type ProviderArticle struct {
	SourceName  string
	Title       string
	Description string
	URL         string
	PublishedAt time.Time
	Content     string
}

type SearchQuery struct {
	Query    string
	From     time.Time
	Language string
	SortBy   string
	PageSize int
}

type SearchResult struct {
	TotalResults int
	Articles     []ProviderArticle
}

// FetchResult summarises one FetchNews call. ArticlesSaved counts both new
// rows and rows that already existed for the contact.
type FetchResult struct {
	Contact       *Contact
	ArticlesFound int
	ArticlesSaved int
	Inserted      int
	Articles      []NewsArticle
}

// BatchResult is the outcome of refreshing one contact. Either the article
// counts or Error is set.
type BatchResult struct {
	ContactID     uuid.UUID `json:"contact_id"`
	ContactName   string    `json:"contact_name"`
	ArticlesFound *int      `json:"articles_found,omitempty"`
	ArticlesSaved *int      `json:"articles_saved,omitempty"`
	Error         string    `json:"error,omitempty"`
}
