package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"contact_news/internal/config"
	"contact_news/internal/domain"
)

const summaryContentChars = 300

// NewsService pulls provider articles for one contact and stores the ones
// not seen before.
type NewsService struct {
	authorizer *ContactAuthorizer
	provider   NewsProvider
	news       NewsStore
	publisher  Publisher
	logger     *slog.Logger
	config     config.NewsConfig
	now        func() time.Time
}

func NewNewsService(
	authorizer *ContactAuthorizer,
	provider NewsProvider,
	news NewsStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.NewsConfig,
) *NewsService {
	return &NewsService{
		authorizer: authorizer,
		provider:   provider,
		news:       news,
		publisher:  publisher,
		logger:     logger.With("component", "news"),
		config:     cfg,
		now:        time.Now,
	}
}

func (s *NewsService) FetchNews(ctx context.Context, contactID, ownerUserID uuid.UUID) (*domain.FetchResult, error) {
	contact, err := s.authorizer.Authorize(ctx, contactID, ownerUserID)
	if err != nil {
		return nil, err
	}

	logger := s.logger.With("contact_id", contact.ID)
	query := domain.SearchQuery{
		Query:    contact.SearchQuery(),
		From:     s.now().Add(-s.config.Window),
		Language: s.config.Language,
		SortBy:   s.config.SortBy,
		PageSize: s.config.PageSize,
	}

	logger.Info("searching news", "query", query.Query)

	found, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search news: %w", err)
	}

	logger.Info("fetched articles from provider",
		"total_results", found.TotalResults,
		"returned", len(found.Articles),
	)

	result := &domain.FetchResult{
		Contact:       contact,
		ArticlesFound: found.TotalResults,
		Articles:      make([]domain.NewsArticle, 0, len(found.Articles)),
	}

	for i := range found.Articles {
		pa := &found.Articles[i]
		if pa.Title == "" || pa.URL == "" {
			logger.Debug("skipping incomplete article", "title", pa.Title, "url", pa.URL)
			continue
		}

		article, isNew, err := s.saveArticle(ctx, contact.ID, pa)
		if err != nil {
			logger.Warn("failed to save article", "url", pa.URL, "error", err)
			continue
		}

		result.Articles = append(result.Articles, *article)
		if !isNew {
			continue
		}
		result.Inserted++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, article); err != nil {
				logger.Warn("failed to publish article", "article_id", article.ID, "error", err)
			}
		}
	}

	result.ArticlesSaved = len(result.Articles)

	logger.Info("news fetch completed",
		"found", result.ArticlesFound,
		"saved", result.ArticlesSaved,
		"inserted", result.Inserted,
	)

	return result, nil
}

// saveArticle returns the stored row for the article and whether this call
// created it.
func (s *NewsService) saveArticle(ctx context.Context, contactID uuid.UUID, pa *domain.ProviderArticle) (*domain.NewsArticle, bool, error) {
	existing, err := s.news.FindNewsByURL(ctx, contactID, pa.URL)
	if err != nil {
		return nil, false, fmt.Errorf("check existing: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	saved, err := s.news.InsertNews(ctx, s.buildArticle(contactID, pa))
	if errors.Is(err, domain.ErrDuplicateArticle) {
		// Lost a race with a concurrent fetch for the same URL.
		existing, err = s.news.FindNewsByURL(ctx, contactID, pa.URL)
		if err != nil {
			return nil, false, fmt.Errorf("reload duplicate: %w", err)
		}
		if existing == nil {
			return nil, false, domain.ErrDuplicateArticle
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("insert article: %w", err)
	}

	return saved, true, nil
}

func (s *NewsService) buildArticle(contactID uuid.UUID, pa *domain.ProviderArticle) *domain.NewsArticle {
	source := pa.SourceName
	if source == "" {
		source = domain.UnknownSource
	}

	summary := pa.Description
	if summary == "" {
		summary = prefix(pa.Content, summaryContentChars)
	}

	return &domain.NewsArticle{
		ContactID:   contactID,
		Source:      source,
		Title:       pa.Title,
		URL:         pa.URL,
		Summary:     summary,
		PublishedAt: pa.PublishedAt,
		FetchedAt:   s.now().UTC(),
		Topics:      pq.StringArray{},
	}
}
