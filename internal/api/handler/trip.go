package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rrens/ecotrip/internal/api/response"
	"github.com/Rrens/ecotrip/internal/domain"
)

// CaptionGenerator writes a caption for a location
type CaptionGenerator interface {
	Generate(ctx context.Context, location string) (*domain.Caption, error)
}

// TripHandler handles trip endpoints
type TripHandler struct {
	captions      CaptionGenerator
	exposeDetails bool
}

// NewTripHandler creates a new trip handler
func NewTripHandler(captions CaptionGenerator, exposeDetails bool) *TripHandler {
	return &TripHandler{captions: captions, exposeDetails: exposeDetails}
}

// Caption handles POST /trips
func (h *TripHandler) Caption(w http.ResponseWriter, r *http.Request) {
	var req domain.CaptionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	caption, err := h.captions.Generate(r.Context(), req.Location)
	if err != nil {
		writeError(w, r, err, h.exposeDetails)
		return
	}

	response.OK(w, caption)
}
