package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/ecotrip/internal/api/handler"
	"github.com/Rrens/ecotrip/internal/domain"
	"github.com/Rrens/ecotrip/internal/llm"
)

type fakeLandmarks struct {
	calls  int
	lookup func(ctx context.Context, location string) (*domain.LandmarkResult, error)
}

func (f *fakeLandmarks) Lookup(ctx context.Context, location string) (*domain.LandmarkResult, error) {
	f.calls++
	return f.lookup(ctx, location)
}

type fakeCaptions struct {
	calls    int
	generate func(ctx context.Context, location string) (*domain.Caption, error)
}

func (f *fakeCaptions) Generate(ctx context.Context, location string) (*domain.Caption, error) {
	f.calls++
	return f.generate(ctx, location)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestLandmarkHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		result     *domain.LandmarkResult
		err        error
		expose     bool
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:  "found",
			query: "?location=Utah",
			result: &domain.LandmarkResult{
				Location:  "utah",
				Landmarks: []string{"Arches National Park", "Zion National Park", "Bryce Canyon"},
				Source:    domain.SourceLocalDatabase,
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"location":  "utah",
				"landmarks": []any{"Arches National Park", "Zion National Park", "Bryce Canyon"},
				"source":    "local-database",
			},
		},
		{
			name:       "missing location",
			err:        &domain.ValidationError{Field: "location", Message: "Location is required"},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Location is required"},
		},
		{
			name:       "provider failure hides details",
			query:      "?location=Peru",
			err:        &domain.ServiceError{Message: "Failed to fetch landmarks", Err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "Failed to fetch landmarks"},
		},
		{
			name:       "provider failure with details",
			query:      "?location=Peru",
			err:        &domain.ServiceError{Message: "Failed to fetch landmarks", Err: errors.New("boom")},
			expose:     true,
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "Failed to fetch landmarks", "details": "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLocation string
			svc := &fakeLandmarks{lookup: func(_ context.Context, location string) (*domain.LandmarkResult, error) {
				gotLocation = location
				return tt.result, tt.err
			}}
			h := handler.NewLandmarkHandler(svc, tt.expose)

			rec := httptest.NewRecorder()
			h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/landmarks"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decode(t, rec))
			assert.Equal(t, 1, svc.calls)
			if tt.query != "" {
				assert.Equal(t, strings.TrimPrefix(tt.query, "?location="), gotLocation)
			}
		})
	}
}

func TestTripHandler_Caption(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		caption    *domain.Caption
		err        error
		wantStatus int
		wantBody   map[string]any
		wantCalls  int
	}{
		{
			name:       "ok",
			body:       `{"location":"Lisbon"}`,
			caption:    &domain.Caption{Caption: "Golden light over old trams."},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"caption": "Golden light over old trams."},
			wantCalls:  1,
		},
		{
			name:       "malformed body",
			body:       `{"location":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "invalid request body"},
		},
		{
			name:       "missing location",
			body:       `{}`,
			err:        &domain.ValidationError{Field: "location", Message: "Location is required"},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Location is required"},
			wantCalls:  1,
		},
		{
			name:       "provider failure",
			body:       `{"location":"Lisbon"}`,
			err:        &domain.ServiceError{Message: "Failed to generate caption", Err: llm.StatusError("openai", http.StatusUnauthorized)},
			wantStatus: http.StatusInternalServerError,
			wantBody: map[string]any{
				"error":   "Failed to generate caption",
				"details": "openai: auth (status 401): openai returned status 401",
			},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeCaptions{generate: func(context.Context, string) (*domain.Caption, error) {
				return tt.caption, tt.err
			}}
			h := handler.NewTripHandler(svc, true)

			rec := httptest.NewRecorder()
			h.Caption(rec, httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decode(t, rec))
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}

func TestValidateHandler(t *testing.T) {
	h := handler.NewValidateHandler()
	r := chi.NewRouter()
	r.Get("/validate", h.Schemas)
	r.Post("/validate/{schema}", h.Validate)

	t.Run("valid payload", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/validate/plan",
			strings.NewReader(`{"origin":"NYC","destination":"Boston","budget":250}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, map[string]any{"origin": "NYC", "destination": "Boston", "budget": float64(250)}, body["data"])
	})

	t.Run("invalid payload", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/validate/plan-enhanced",
			strings.NewReader(`{"origin":"Boston","destination":"boston","budget":250}`)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, []any{
			map[string]any{"path": "destination", "message": "Origin and destination must be different"},
		}, body["errors"])
	})

	t.Run("unknown schema", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/validate/passport", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "unknown schema: passport", decode(t, rec)["error"])
	})

	t.Run("schema list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validate", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, decode(t, rec)["schemas"], "route-option")
	})
}

type stubProviders struct{}

func (stubProviders) GetProvidersInfo() []llm.ProviderInfo {
	return []llm.ProviderInfo{{Name: "openai", Models: []string{"gpt-4o-mini"}, DefaultModel: "gpt-4o-mini", Default: true, Configured: true}}
}

func (stubProviders) DefaultProvider() string { return "openai" }

func TestListLLMProviders(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.ListLLMProviders(stubProviders{})(rec, httptest.NewRequest(http.MethodGet, "/api/llm-providers", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "openai", body["default_provider"])
	providers, ok := body["providers"].([]any)
	require.True(t, ok)
	require.Len(t, providers, 1)
	assert.Equal(t, "gpt-4o-mini", providers[0].(map[string]any)["default_model"])
}
