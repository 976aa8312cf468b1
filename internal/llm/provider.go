package llm

import "context"

// Message roles understood by every provider
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat turn
type Message struct {
	Role    string
	Content string
}

// CompletionRequest contains text generation parameters
type CompletionRequest struct {
	// System is an optional instruction sent ahead of Messages.
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature *float64
}

// Response contains LLM generation result
type Response struct {
	Text       string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// AvailableModels returns list of supported models
	AvailableModels() []string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete sends a chat completion request and returns the generated text
	Complete(ctx context.Context, req CompletionRequest, model string) (*Response, error)
}

// Float returns a pointer to f, for CompletionRequest.Temperature.
func Float(f float64) *float64 {
	return &f
}
