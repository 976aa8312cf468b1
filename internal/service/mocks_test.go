package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Rrens/ecotrip/internal/llm"
)

// MockLLMProvider mocks llm.Provider
type MockLLMProvider struct {
	mock.Mock
}

func (m *MockLLMProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockLLMProvider) AvailableModels() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockLLMProvider) DefaultModel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockLLMProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockLLMProvider) Complete(ctx context.Context, req llm.CompletionRequest, model string) (*llm.Response, error) {
	args := m.Called(ctx, req, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}

// newMockRouter registers provider as the default of a fresh router
func newMockRouter(provider *MockLLMProvider) *llm.Router {
	provider.On("Name").Return("openai").Maybe()
	provider.On("IsConfigured").Return(true).Maybe()
	provider.On("DefaultModel").Return("gpt-4o-mini").Maybe()

	router := llm.NewRouter("openai")
	router.RegisterProvider(provider)
	return router
}
