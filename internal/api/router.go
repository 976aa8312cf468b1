package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/ecotrip/internal/api/handler"
	customMiddleware "github.com/Rrens/ecotrip/internal/api/middleware"
	"github.com/Rrens/ecotrip/internal/config"
	"github.com/Rrens/ecotrip/internal/landmark"
	"github.com/Rrens/ecotrip/internal/llm"
	"github.com/Rrens/ecotrip/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, llmRouter *llm.Router) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(customMiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.Server.MiddlewareTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))
	}

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", customMiddleware.RequestIDHeader},
		ExposedHeaders: []string{customMiddleware.RequestIDHeader},
		MaxAge:         300,
	}))

	catalog := landmark.NewCatalog(cfg.Landmarks.Catalog)
	log.Info().
		Int("regions", catalog.Len()).
		Strs("names", catalog.Regions()).
		Msg("Landmark catalog loaded")

	// Initialize services
	landmarkService := service.NewLandmarkService(
		catalog,
		llmRouter,
		service.LandmarkOptions{
			Provider:  cfg.Landmarks.Provider,
			Model:     cfg.Landmarks.Model,
			MaxTokens: cfg.Landmarks.MaxTokens,
			Timeout:   cfg.LLM.RequestTimeout,
		},
	)
	captionService := service.NewCaptionService(
		llmRouter,
		service.CaptionOptions{
			Provider:    cfg.Captions.Provider,
			Model:       cfg.Captions.Model,
			MaxTokens:   cfg.Captions.MaxTokens,
			Temperature: cfg.Captions.Temperature,
			Timeout:     cfg.LLM.RequestTimeout,
		},
	)

	// Initialize handlers
	landmarkHandler := handler.NewLandmarkHandler(landmarkService, cfg.Server.ExposeErrorDetails)
	tripHandler := handler.NewTripHandler(captionService, cfg.Server.ExposeErrorDetails)
	validateHandler := handler.NewValidateHandler()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		r.Get("/llm-providers", handler.ListLLMProviders(llmRouter))

		r.Get("/landmarks", landmarkHandler.Get)
		r.Post("/trips", tripHandler.Caption)

		r.Route("/validate", func(r chi.Router) {
			r.Get("/", validateHandler.Schemas)
			r.Post("/{schema}", validateHandler.Validate)
		})
	})

	return r
}
