package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrNotFoundOrUnauthorized = errors.New("contact not found or unauthorized")
	ErrContactNotFound        = errors.New("contact not found")
	ErrDuplicateArticle       = errors.New("article already exists")
	ErrInvalidInput           = errors.New("invalid input")
	ErrRunInterrupted         = errors.New("batch refresh interrupted")
)

// ConfigurationError reports a missing provider credential or setting.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not configured", e.Setting)
}

// ProviderError is a non-success answer from an external API.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s request failed: %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: %d: %s", e.Provider, e.StatusCode, e.Message)
}

type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
