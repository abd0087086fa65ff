// Package auth resolves bearer tokens issued by the hosted auth service
// (GoTrue) into user ids and guards gin routes with them.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"contact_news/internal/domain"
)

type Config struct {
	BaseURL string
	AnonKey string
	Timeout time.Duration
}

// GoTrue resolves a user access token by asking the auth server who owns it.
type GoTrue struct {
	httpClient *http.Client
	baseURL    string
	anonKey    string
	logger     *slog.Logger
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewGoTrue(cfg Config, logger *slog.Logger) *GoTrue {
	return &GoTrue{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		anonKey: cfg.AnonKey,
		logger:  logger.With("component", "auth"),
	}
}

// ResolveUser returns the id of the user the token was issued to. Any
// rejection by the auth server is reported as domain.ErrUnauthorized.
func (g *GoTrue) ResolveUser(ctx context.Context, token string) (uuid.UUID, error) {
	if g.baseURL == "" {
		return uuid.Nil, &domain.ConfigurationError{Setting: "auth.base_url"}
	}
	if token == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if g.anonKey != "" {
		req.Header.Set("apikey", g.anonKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Debug("token rejected", "status", resp.StatusCode)
		if resp.StatusCode >= 500 {
			return uuid.Nil, &domain.ProviderError{Provider: "auth", StatusCode: resp.StatusCode}
		}
		return uuid.Nil, domain.ErrUnauthorized
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return uuid.Nil, fmt.Errorf("decode response: %w", err)
	}

	id, err := uuid.Parse(user.ID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domain.ErrUnauthorized
	}

	return id, nil
}
