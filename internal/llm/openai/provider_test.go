package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/ecotrip/internal/llm"
	"github.com/Rrens/ecotrip/internal/llm/openai"
)

func TestProvider_Complete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"1. Big Sur"}}],"usage":{"total_tokens":12}}`))
	}))
	defer srv.Close()

	p := openai.NewProviderWithURL(srv.URL, "sk-test", "")
	resp, err := p.Complete(context.Background(), llm.CaptionRequest("Big Sur", 60, 0.7), "")
	require.NoError(t, err)

	assert.Equal(t, "1. Big Sur", resp.Text)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, 12, resp.TokensUsed)

	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.EqualValues(t, 60, got["max_tokens"])
	assert.InDelta(t, 0.7, got["temperature"], 1e-9)

	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestProvider_Complete_OmitsTemperature(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":null}}]}`))
	}))
	defer srv.Close()

	p := openai.NewProviderWithURL(srv.URL, "sk-test", "gpt-4o")
	resp, err := p.Complete(context.Background(), llm.LandmarkRequest("ohio", 50), "")
	require.NoError(t, err)

	assert.Equal(t, "", resp.Text)
	assert.NotContains(t, got, "temperature")
	assert.Equal(t, "gpt-4o", got["model"])
}

func TestProvider_Complete_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   llm.ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"bad key"}}`, llm.KindAuth},
		{"rate limited", http.StatusTooManyRequests, `{}`, llm.KindRateLimit},
		{"server error", http.StatusInternalServerError, `{}`, llm.KindUpstream},
		{"garbage body", http.StatusOK, `not json`, llm.KindMalformed},
		{"no choices", http.StatusOK, `{"choices":[]}`, llm.KindMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := openai.NewProviderWithURL(srv.URL, "sk-test", "")
			_, err := p.Complete(context.Background(), llm.LandmarkRequest("ohio", 50), "")
			require.Error(t, err)
			assert.Equal(t, tt.kind, llm.KindOf(err))
		})
	}
}

func TestProvider_Complete_NotConfigured(t *testing.T) {
	p := openai.NewProvider("", "")
	assert.False(t, p.IsConfigured())

	_, err := p.Complete(context.Background(), llm.LandmarkRequest("ohio", 50), "")
	assert.Equal(t, llm.KindNotConfigured, llm.KindOf(err))
}

func TestProvider_Complete_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	p := openai.NewProviderWithURL(srv.URL, "sk-test", "")
	_, err := p.Complete(ctx, llm.LandmarkRequest("ohio", 50), "")
	assert.Equal(t, llm.KindTimeout, llm.KindOf(err))
}
