package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenIsExpired:     http.StatusUnauthorized,
	service.ErrTokenIsMalformed:   http.StatusUnauthorized,
	service.ErrTokenIsInvalid:     http.StatusUnauthorized,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrProfileNotFound:   http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers err with its mapped status. messages overrides the
// error text per status; a 500 always carries the generic message and the
// detail goes to the log only.
func writeError(w http.ResponseWriter, r *http.Request, err error, messages map[int]string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	message, ok := messages[status]
	switch {
	case status == http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error")
		message = app.MsgInternalServerError
	case !ok:
		log.Warn().Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	default:
		log.Warn().Err(err).Int("status", status).Msg("request failed")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
