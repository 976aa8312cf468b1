package deepseek

import (
	"github.com/Rrens/ecotrip/internal/llm/openai"
)

const baseURL = "https://api.deepseek.com/v1"

// NewProvider creates a DeepSeek provider. DeepSeek speaks the OpenAI chat
// completions protocol, so the OpenAI client is reused with its own base URL.
func NewProvider(apiKey, defaultModel string) *openai.Provider {
	return NewProviderWithURL(baseURL, apiKey, defaultModel)
}

// NewProviderWithURL creates a DeepSeek provider pointing at a custom base URL
func NewProviderWithURL(url, apiKey, defaultModel string) *openai.Provider {
	if defaultModel == "" {
		defaultModel = "deepseek-chat"
	}
	return openai.NewCompatibleProvider("deepseek", url, apiKey, defaultModel, []string{
		"deepseek-chat",
		"deepseek-reasoner",
	})
}
