package api

import (
	"context"
	"errors"
	"net/http"

	"contact_news/internal/domain"
)

// statusFor maps a service error onto the HTTP status returned to callers.
func statusFor(err error) int {
	var (
		cerr *domain.ConfigurationError
		perr *domain.ProviderError
		serr *domain.StoreError
	)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFoundOrUnauthorized):
		return http.StatusNotFound
	case errors.As(err, &cerr):
		return http.StatusInternalServerError
	case errors.As(err, &perr):
		return http.StatusBadGateway
	case errors.As(err, &serr):
		return http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
