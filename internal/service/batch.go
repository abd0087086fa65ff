package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"contact_news/internal/config"
	"contact_news/internal/domain"
)

// BatchService refreshes news for high-priority contacts whose stored
// articles are missing or stale. Contacts are processed one at a time and
// every provider-bound fetch waits on a shared limiter.
type BatchService struct {
	contacts ContactStore
	news     NewsStore
	fetcher  NewsFetcher
	limiter  *rate.Limiter
	logger   *slog.Logger
	config   config.BatchConfig
	now      func() time.Time
}

func NewBatchService(
	contacts ContactStore,
	news NewsStore,
	fetcher NewsFetcher,
	logger *slog.Logger,
	cfg config.BatchConfig,
) *BatchService {
	every := rate.Inf
	if cfg.Delay > 0 {
		every = rate.Every(cfg.Delay)
	}

	return &BatchService{
		contacts: contacts,
		news:     news,
		fetcher:  fetcher,
		limiter:  rate.NewLimiter(every, 1),
		logger:   logger.With("component", "batch"),
		config:   cfg,
		now:      time.Now,
	}
}

func (s *BatchService) RunBatchRefresh(ctx context.Context) ([]domain.BatchResult, error) {
	startTime := s.now()
	s.logger.Info("starting batch refresh",
		"min_priority", s.config.MinPriority,
		"max_contacts", s.config.MaxContacts,
		"freshness", s.config.Freshness,
	)

	candidates, err := s.contacts.QueryHighPriorityContacts(ctx, s.config.MinPriority, s.config.MaxContacts)
	if err != nil {
		return nil, &domain.StoreError{Op: "query high priority contacts", Err: err}
	}

	stale := s.selectStale(ctx, candidates)
	s.logger.Info("contacts need refresh", "candidates", len(candidates), "stale", len(stale))

	results := make([]domain.BatchResult, 0, len(stale))
	for i := range stale {
		contact := &stale[i]

		// Wait fails early when the next token lies beyond the deadline, so
		// the results gathered so far are returned with the interruption.
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Warn("batch refresh interrupted", "processed", len(results), "remaining", len(stale)-i, "error", err)
			return results, fmt.Errorf("%w after %d of %d contacts: %w", domain.ErrRunInterrupted, len(results), len(stale), err)
		}

		entry := domain.BatchResult{
			ContactID:   contact.ID,
			ContactName: contact.FullName,
		}

		res, err := s.fetcher.FetchNews(ctx, contact.ID, contact.UserID)
		if err != nil {
			var cfgErr *domain.ConfigurationError
			if errors.As(err, &cfgErr) {
				return nil, err
			}
			s.logger.Error("contact refresh failed", "contact_id", contact.ID, "error", err)
			entry.Error = err.Error()
		} else {
			found, saved := res.ArticlesFound, res.ArticlesSaved
			entry.ArticlesFound = &found
			entry.ArticlesSaved = &saved
		}

		results = append(results, entry)
	}

	s.logger.Info("batch refresh completed",
		"processed", len(results),
		"duration", s.now().Sub(startTime),
	)

	return results, nil
}

// selectStale keeps contacts that qualify for a refresh: high enough
// priority, a company to search for, and no article fetched within the
// freshness window.
func (s *BatchService) selectStale(ctx context.Context, candidates []domain.Contact) []domain.Contact {
	cutoff := s.now().Add(-s.config.Freshness)

	var stale []domain.Contact
	for _, c := range candidates {
		if c.RelationshipPriority < s.config.MinPriority || c.Company() == "" {
			continue
		}

		latest, err := s.news.FindLatestNews(ctx, c.ID)
		if err != nil {
			s.logger.Warn("failed to read latest news, treating as stale", "contact_id", c.ID, "error", err)
			stale = append(stale, c)
			continue
		}

		if latest == nil || latest.FetchedAt.Before(cutoff) {
			stale = append(stale, c)
		}
	}
	return stale
}
