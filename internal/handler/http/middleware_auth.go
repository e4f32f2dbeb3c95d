package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the
// [models.Identity] in the request context before delegating to next.
//
// A request without a bearer token is rejected with 401 Unauthorized; a
// token that fails verification for any reason is rejected with 403
// Forbidden.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Str("ip", r.RemoteAddr).Str("path", r.URL.Path).Msg("authentication attempt without token")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgAccessTokenRequired}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("ip", r.RemoteAddr).Str("path", r.URL.Path).Msg("invalid token provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidOrExpiredToken}, http.StatusForbidden)
			return
		}

		identity := token.Identity()
		log.Info().Str("user_id", identity.UserID).Str("path", r.URL.Path).Msg("successful authentication")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// optionalAuth attaches the identity when the request carries a valid bearer
// token and otherwise lets the request through untouched.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("optional auth failed")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, token.Identity())))
	})
}
