package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact_news/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content any    `json:"content"`
	} `json:"messages"`
}

func completion(content string) string {
	return fmt.Sprintf(`{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1741600000,
  "model": "gpt-4o-mini",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": "stop"}],
  "usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
}`, content)
}

func newTestModel(t *testing.T, handler http.HandlerFunc) *OpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m, err := New(Config{
		BaseURL: srv.URL,
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}, testLogger())
	require.NoError(t, err)
	return m
}

func TestComplete_SendsConversation(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.InDelta(t, 0.3, req.Temperature, 0.0001)
		require.Len(t, req.Messages, 3)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "assistant", req.Messages[1].Role)
		assert.Equal(t, "user", req.Messages[2].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completion("Send a follow-up email.")))
	})

	reply, err := m.Complete(context.Background(), "system", "Context for Jane:\n{}", "next step?", 0.3)

	require.NoError(t, err)
	assert.Equal(t, "Send a follow-up email.", reply)
}

func TestComplete_EmptyContent(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completion("")))
	})

	reply, err := m.Complete(context.Background(), "system", "ctx", "hi", 0.3)

	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestComplete_UpstreamRejection(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests"}}`))
	})

	_, err := m.Complete(context.Background(), "system", "ctx", "hi", 0.3)

	var perr *domain.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusTooManyRequests, perr.StatusCode)
}

func TestComplete_MissingKey(t *testing.T) {
	m, err := New(Config{Model: "gpt-4o-mini"}, testLogger())
	require.NoError(t, err)

	_, err = m.Complete(context.Background(), "system", "ctx", "hi", 0.3)

	var cerr *domain.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "llm.api_key", cerr.Setting)
}

func TestToProviderError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"status in text", errors.New("API returned unexpected status code: 500: server error"), 500},
		{"wrapped status", fmt.Errorf("create chat: %w", errors.New("API returned unexpected status code: 401")), 401},
		{"no status", errors.New("connection reset by peer"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toProviderError(tt.err)
			var perr *domain.ProviderError
			if tt.wantCode == 0 {
				assert.False(t, errors.As(err, &perr))
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantCode, perr.StatusCode)
		})
	}

	assert.Equal(t, context.Canceled, toProviderError(context.Canceled))
}
