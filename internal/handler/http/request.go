package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// decodeRequest fills dst from the JSON body and reports whether the
// handler should continue. An empty body leaves dst zeroed so validation
// answers with the endpoint's own message. Malformed JSON is answered with
// 400 and an oversized body with 413.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return true
	}

	log := logger.FromRequest(r)

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		log.Warn().Err(err).Int64("limit", maxBytesErr.Limit).Msg("request body too large")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgPayloadTooLarge}, http.StatusRequestEntityTooLarge)
		return false
	}

	log.Warn().Err(err).Msg("invalid JSON was passed")
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
	return false
}
