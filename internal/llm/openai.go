// Package llm answers chat turns through an OpenAI-compatible chat
// completions API using langchaingo.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"contact_news/internal/domain"
)

const ProviderName = "openai"

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAI implements service.LLMProvider. Without an API key it is still
// constructed, but every call fails with a ConfigurationError.
type OpenAI struct {
	llm       llms.Model
	modelName string
	logger    *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*OpenAI, error) {
	m := &OpenAI{
		modelName: cfg.Model,
		logger:    logger.With("provider", ProviderName),
	}
	if cfg.APIKey == "" {
		return m, nil
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai model: %w", err)
	}
	m.llm = model

	return m, nil
}

// Complete sends a three-message conversation: the system prompt, the
// contact context as a prior assistant turn, and the user's message. An
// empty string means the model produced no content.
func (m *OpenAI) Complete(ctx context.Context, systemPrompt, contextPayload, userMessage string, temperature float64) (string, error) {
	if m.llm == nil {
		return "", &domain.ConfigurationError{Setting: "llm.api_key"}
	}

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeAI, contextPayload),
		llms.TextParts(schema.ChatMessageTypeHuman, userMessage),
	}

	start := time.Now()
	response, err := m.llm.GenerateContent(ctx, messages, llms.WithTemperature(temperature))
	if errors.Is(err, openai.ErrEmptyResponse) {
		return "", nil
	}
	if err != nil {
		return "", toProviderError(err)
	}

	m.logger.Debug("completion received",
		"model", m.modelName,
		"choices", len(response.Choices),
		"duration", time.Since(start),
	)

	if len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Content, nil
}

var statusPattern = regexp.MustCompile(`status code: (\d+)`)

// toProviderError recovers the HTTP status that langchaingo only reports in
// its error text. Transport failures keep their original error.
func toProviderError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	match := statusPattern.FindStringSubmatch(err.Error())
	if match == nil {
		return fmt.Errorf("generate content: %w", err)
	}
	code, _ := strconv.Atoi(match[1])
	return &domain.ProviderError{
		Provider:   ProviderName,
		StatusCode: code,
		Message:    err.Error(),
	}
}
