package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rrens/ecotrip/internal/api/response"
	"github.com/Rrens/ecotrip/internal/validation"
)

const maxBodyBytes = 1 << 20

type validationResult struct {
	Success bool                    `json:"success"`
	Data    any                     `json:"data,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// ValidateHandler checks payloads against the named schemas
type ValidateHandler struct{}

// NewValidateHandler creates a new validate handler
func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

// Schemas handles GET /validate
func (h *ValidateHandler) Schemas(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]any{"schemas": validation.Names()})
}

// Validate handles POST /validate/{schema}
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "schema")
	schema, ok := validation.Lookup(name)
	if !ok {
		response.NotFound(w, "unknown schema: "+name)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	data, err := schema.Validate(body)
	if err != nil {
		var se *validation.SchemaError
		if errors.As(err, &se) {
			response.UnprocessableEntity(w, validationResult{Errors: se.Errors})
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	response.OK(w, validationResult{Success: true, Data: data})
}
