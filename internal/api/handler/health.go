package handler

import (
	"net/http"

	"github.com/Rrens/ecotrip/internal/api/response"
	"github.com/Rrens/ecotrip/internal/llm"
)

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ProviderLister reports the registered LLM providers
type ProviderLister interface {
	GetProvidersInfo() []llm.ProviderInfo
	DefaultProvider() string
}

// ListLLMProviders returns available LLM providers
func ListLLMProviders(providers ProviderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{
			"providers":        providers.GetProvidersInfo(),
			"default_provider": providers.DefaultProvider(),
		})
	}
}
