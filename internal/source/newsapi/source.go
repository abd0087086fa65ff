package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"contact_news/internal/domain"
)

const (
	ProviderName = "newsapi"
	dateLayout   = "2006-01-02"
)

// Config holds NewsAPI source configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source implements service.NewsProvider for the NewsAPI "everything" search.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new NewsAPI source.
func New(cfg Config, logger *slog.Logger) *Source {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		maxAttempts:    attempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", ProviderName),
	}
}

// Search runs one query against the provider. Rejections by the provider are
// returned as *domain.ProviderError carrying the HTTP status.
func (s *Source) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
	if s.apiKey == "" {
		return nil, &domain.ConfigurationError{Setting: "news.api_key"}
	}

	endpoint, err := s.buildURL(q)
	if err != nil {
		return nil, err
	}

	resp, err := s.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return &domain.SearchResult{
		TotalResults: resp.TotalResults,
		Articles:     s.transform(resp.Articles),
	}, nil
}

func (s *Source) buildURL(q domain.SearchQuery) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	params := u.Query()
	params.Set("q", q.Query)
	if !q.From.IsZero() {
		params.Set("from", q.From.UTC().Format(dateLayout))
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	params.Set("apiKey", s.apiKey)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func (s *Source) fetch(ctx context.Context, endpoint string) (*APIResponse, error) {
	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, endpoint)
		if err == nil {
			return resp, nil
		}

		if !retryable(err) || attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, err
}

func (s *Source) doRequest(ctx context.Context, endpoint string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ContactNews/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.ProviderError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

// errorMessage extracts the provider's explanation from an error body.
func errorMessage(body io.Reader) string {
	var apiResp APIResponse
	if err := json.NewDecoder(io.LimitReader(body, 64<<10)).Decode(&apiResp); err != nil {
		return ""
	}
	return apiResp.Message
}

// retryable reports whether a failed attempt may succeed when repeated.
// Client errors other than 429 are final.
func retryable(err error) bool {
	var perr *domain.ProviderError
	if errors.As(err, &perr) {
		return perr.StatusCode == http.StatusTooManyRequests || perr.StatusCode >= 500
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(items []Article) []domain.ProviderArticle {
	articles := make([]domain.ProviderArticle, 0, len(items))

	for _, a := range items {
		publishedAt, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil {
			s.logger.Warn("failed to parse date",
				"url", a.URL,
				"date", a.PublishedAt,
			)
			continue
		}

		article := domain.ProviderArticle{
			SourceName:  a.Source.Name,
			Title:       a.Title,
			URL:         a.URL,
			PublishedAt: publishedAt,
		}
		if a.Description != nil {
			article.Description = *a.Description
		}
		if a.Content != nil {
			article.Content = *a.Content
		}

		articles = append(articles, article)
	}

	return articles
}
