package http

import (
	"compress/flate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order matters: the trace ID and the
// access log wrap everything, so recovered panics and CORS preflights are
// logged too.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	router.Use(h.withCORS())
	router.Use(h.withSecureHeaders())
	if h.server.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(h.server.MaxBodyBytes))
	}
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(middleware.Compress(flate.DefaultCompression, "application/json"))

	router.With(h.optionalAuth).Get("/health", h.health)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/verify", h.verify)
	})

	router.Route("/api/users", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listUsers)
		r.Get("/stats/summary", h.userStats)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}
