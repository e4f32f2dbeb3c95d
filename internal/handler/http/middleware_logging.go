package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
)

// withLogging writes one access log entry per request, in the form
// "METHOD /path - ip", after the response has been written.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Str("ip", r.RemoteAddr).
			Int("status", lw.statusCode()).
			Dur("duration", duration).
			Int("size", lw.size).
			Msgf("%s %s - %s", method, r.URL.Path, r.RemoteAddr)
	})
}
