package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Rrens/ecotrip/internal/api/response"
	"github.com/Rrens/ecotrip/internal/domain"
)

// writeError maps service errors to responses. The cause of a ServiceError
// is always logged and only sent to the client when exposeDetails is set.
func writeError(w http.ResponseWriter, r *http.Request, err error, exposeDetails bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		response.BadRequest(w, verr.Message)
		return
	}

	var serr *domain.ServiceError
	if errors.As(err, &serr) {
		log.Error().Err(serr.Err).
			Str("path", r.URL.Path).
			Msg(serr.Message)

		if exposeDetails && serr.Details() != "" {
			response.ErrorWithDetails(w, http.StatusInternalServerError, serr.Message, serr.Details())
			return
		}
		response.InternalError(w, serr.Message)
		return
	}

	log.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
	response.InternalError(w, "internal server error")
}
