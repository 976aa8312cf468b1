package service

import (
	"context"
	"time"

	"github.com/Rrens/ecotrip/internal/llm"
)

// ProviderResolver resolves LLM providers by name. *llm.Router satisfies it.
type ProviderResolver interface {
	GetProvider(name string) (llm.Provider, error)
	DefaultProvider() string
}

// completion describes which provider and model a service talks to
type completion struct {
	resolver ProviderResolver
	provider string
	model    string
	timeout  time.Duration
}

// complete sends one request to the configured provider. An empty model
// falls back to the provider's default.
func (c completion) complete(ctx context.Context, req llm.CompletionRequest) (*llm.Response, string, error) {
	p, err := c.resolver.GetProvider(c.provider)
	if err != nil {
		return nil, c.providerName(), err
	}

	model := c.model
	if model == "" {
		model = p.DefaultModel()
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := p.Complete(ctx, req, model)
	return resp, p.Name(), err
}

func (c completion) providerName() string {
	if c.provider != "" {
		return c.provider
	}
	return c.resolver.DefaultProvider()
}
