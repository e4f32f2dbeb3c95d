package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// withRecover turns a handler panic into a JSON 500. The panic value and the
// stack are logged; the client only sees the generic message.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Err(ErrRecoveredPanic).
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
