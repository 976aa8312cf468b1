package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/ecotrip/internal/llm"
)

type stubProvider struct {
	name       string
	configured bool
}

func (s *stubProvider) Name() string              { return s.name }
func (s *stubProvider) AvailableModels() []string { return []string{s.name + "-small"} }
func (s *stubProvider) DefaultModel() string      { return s.name + "-small" }
func (s *stubProvider) IsConfigured() bool        { return s.configured }
func (s *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest, model string) (*llm.Response, error) {
	return &llm.Response{Text: "ok", Model: model}, nil
}

func TestRouter_GetProvider(t *testing.T) {
	router := llm.NewRouter("openai")
	router.RegisterProvider(&stubProvider{name: "openai", configured: true})
	router.RegisterProvider(&stubProvider{name: "anthropic", configured: false})

	t.Run("default", func(t *testing.T) {
		p, err := router.GetProvider("")
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
	})

	t.Run("by name", func(t *testing.T) {
		p, err := router.GetProvider("openai")
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := router.GetProvider("mistral")
		assert.EqualError(t, err, "provider not found: mistral")
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := router.GetProvider("anthropic")
		require.Error(t, err)
		assert.Equal(t, llm.KindNotConfigured, llm.KindOf(err))
	})
}

func TestRouter_ListProviders(t *testing.T) {
	router := llm.NewRouter("ollama")
	router.RegisterProvider(&stubProvider{name: "openai", configured: true})
	router.RegisterProvider(&stubProvider{name: "ollama", configured: true})
	router.RegisterProvider(&stubProvider{name: "gemini", configured: false})

	assert.Equal(t, []string{"ollama", "openai"}, router.ListProviders())

	infos := router.GetProvidersInfo()
	require.Len(t, infos, 3)
	assert.Equal(t, "gemini", infos[0].Name)
	assert.False(t, infos[0].Configured)
	assert.Equal(t, "ollama", infos[1].Name)
	assert.True(t, infos[1].Default)
	assert.Equal(t, "ollama-small", infos[1].DefaultModel)
}

func TestProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind llm.ErrorKind
	}{
		{"unauthorized", llm.StatusError("openai", 401), llm.KindAuth},
		{"forbidden", llm.StatusError("openai", 403), llm.KindAuth},
		{"rate limited", llm.StatusError("openai", 429), llm.KindRateLimit},
		{"gateway timeout", llm.StatusError("openai", 504), llm.KindTimeout},
		{"server error", llm.StatusError("openai", 500), llm.KindUpstream},
		{"deadline", llm.TransportError("openai", context.DeadlineExceeded), llm.KindTimeout},
		{"network", llm.TransportError("openai", errors.New("connection refused")), llm.KindTransport},
		{"malformed", llm.MalformedError("openai", errors.New("no choices")), llm.KindMalformed},
		{"plain error", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, llm.KindOf(tt.err))
		})
	}

	wrapped := llm.TransportError("ollama", context.DeadlineExceeded)
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)
	assert.Contains(t, llm.StatusError("anthropic", 429).Error(), "status 429")
}
