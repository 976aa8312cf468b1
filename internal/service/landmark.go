package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Rrens/ecotrip/internal/domain"
	"github.com/Rrens/ecotrip/internal/landmark"
	"github.com/Rrens/ecotrip/internal/llm"
)

// LandmarkOptions configures the generative fallback of LandmarkService
type LandmarkOptions struct {
	Provider  string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// LandmarkService looks up landmarks in a static catalog and asks an LLM
// for locations the catalog does not know
type LandmarkService struct {
	catalog   *landmark.Catalog
	llm       completion
	maxTokens int
}

// NewLandmarkService creates a new landmark service
func NewLandmarkService(catalog *landmark.Catalog, resolver ProviderResolver, opts LandmarkOptions) *LandmarkService {
	return &LandmarkService{
		catalog: catalog,
		llm: completion{
			resolver: resolver,
			provider: opts.Provider,
			model:    opts.Model,
			timeout:  opts.Timeout,
		},
		maxTokens: opts.MaxTokens,
	}
}

// Lookup returns landmarks for location
func (s *LandmarkService) Lookup(ctx context.Context, location string) (*domain.LandmarkResult, error) {
	location = landmark.Normalize(location)
	if location == "" {
		return nil, &domain.ValidationError{Field: "location", Message: "Location is required"}
	}

	if landmarks, ok := s.catalog.Lookup(location); ok {
		return &domain.LandmarkResult{
			Location:  location,
			Landmarks: landmarks,
			Source:    domain.SourceLocalDatabase,
		}, nil
	}

	resp, provider, err := s.llm.complete(ctx, llm.LandmarkRequest(location, s.maxTokens))
	if err != nil {
		log.Error().Err(err).
			Str("provider", provider).
			Str("kind", string(llm.KindOf(err))).
			Str("location", location).
			Msg("landmark lookup failed")
		return nil, &domain.ServiceError{Message: "Failed to fetch landmarks", Err: err}
	}

	log.Debug().
		Str("provider", provider).
		Str("model", resp.Model).
		Int("tokens", resp.TokensUsed).
		Int64("latency_ms", resp.LatencyMs).
		Msg("landmarks generated")

	return &domain.LandmarkResult{
		Location:  location,
		Landmarks: llm.ParseList(resp.Text),
		Source:    domain.SourceOpenAI,
	}, nil
}
