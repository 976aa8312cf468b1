package api

import (
	"github.com/rs/zerolog/log"

	"github.com/Rrens/ecotrip/internal/config"
	"github.com/Rrens/ecotrip/internal/llm"
	"github.com/Rrens/ecotrip/internal/llm/anthropic"
	"github.com/Rrens/ecotrip/internal/llm/deepseek"
	"github.com/Rrens/ecotrip/internal/llm/gemini"
	"github.com/Rrens/ecotrip/internal/llm/ollama"
	"github.com/Rrens/ecotrip/internal/llm/openai"
)

// NewLLMRouter registers every provider known to the config. Providers
// without credentials are registered too and fail as not configured.
func NewLLMRouter(cfg config.LLMConfig) *llm.Router {
	router := llm.NewRouter(cfg.DefaultProvider)

	if cfg.OpenAI.BaseURL != "" {
		router.RegisterProvider(openai.NewProviderWithURL(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model))
	} else {
		router.RegisterProvider(openai.NewProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model))
	}
	router.RegisterProvider(anthropic.NewProvider(cfg.Anthropic.APIKey, cfg.Anthropic.Model))
	router.RegisterProvider(deepseek.NewProvider(cfg.DeepSeek.APIKey, cfg.DeepSeek.Model))
	router.RegisterProvider(gemini.NewProvider(cfg.Gemini))
	router.RegisterProvider(ollama.NewProvider(cfg.Ollama.Host, cfg.Ollama.DefaultModel))

	log.Info().
		Str("default", cfg.DefaultProvider).
		Strs("configured", router.ListProviders()).
		Msg("LLM providers registered")

	if _, err := router.GetProvider(""); err != nil {
		log.Warn().Err(err).Msg("default LLM provider unavailable, generated results will fail")
	}

	return router
}
