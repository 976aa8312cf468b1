package handler

import (
	"context"
	"net/http"

	"github.com/Rrens/ecotrip/internal/api/response"
	"github.com/Rrens/ecotrip/internal/domain"
)

// LandmarkLooker looks up landmarks for a location
type LandmarkLooker interface {
	Lookup(ctx context.Context, location string) (*domain.LandmarkResult, error)
}

// LandmarkHandler handles landmark endpoints
type LandmarkHandler struct {
	landmarks     LandmarkLooker
	exposeDetails bool
}

// NewLandmarkHandler creates a new landmark handler
func NewLandmarkHandler(landmarks LandmarkLooker, exposeDetails bool) *LandmarkHandler {
	return &LandmarkHandler{landmarks: landmarks, exposeDetails: exposeDetails}
}

// Get handles GET /landmarks?location=
func (h *LandmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.landmarks.Lookup(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		writeError(w, r, err, h.exposeDetails)
		return
	}

	response.OK(w, result)
}
