package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Rrens/ecotrip/internal/domain"
	"github.com/Rrens/ecotrip/internal/llm"
)

// CaptionOptions configures CaptionService
type CaptionOptions struct {
	Provider    string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// CaptionService writes short travel captions for destinations
type CaptionService struct {
	llm         completion
	maxTokens   int
	temperature float64
}

// NewCaptionService creates a new caption service
func NewCaptionService(resolver ProviderResolver, opts CaptionOptions) *CaptionService {
	return &CaptionService{
		llm: completion{
			resolver: resolver,
			provider: opts.Provider,
			model:    opts.Model,
			timeout:  opts.Timeout,
		},
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
	}
}

// FallbackCaption is returned when the model answers with nothing
func FallbackCaption(location string) string {
	return fmt.Sprintf("%s – a beautiful destination for your eco-friendly journey.", location)
}

// Generate returns a caption for location
func (s *CaptionService) Generate(ctx context.Context, location string) (*domain.Caption, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, &domain.ValidationError{Field: "location", Message: "Location is required"}
	}

	req := llm.CaptionRequest(location, s.maxTokens, s.temperature)
	resp, provider, err := s.llm.complete(ctx, req)
	if err != nil {
		log.Error().Err(err).
			Str("provider", provider).
			Str("kind", string(llm.KindOf(err))).
			Str("location", location).
			Msg("caption generation failed")
		return nil, &domain.ServiceError{Message: "Failed to generate caption", Err: err}
	}

	caption := strings.TrimSpace(resp.Text)
	if caption == "" {
		caption = FallbackCaption(location)
	}

	return &domain.Caption{Caption: caption}, nil
}
