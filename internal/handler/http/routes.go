package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withOptionalAuth)

	// anonymous by default; the bearer token only attributes notes to an account
	router.Group(func(r chi.Router) {
		r.With(h.withRateLimit).Post("/api/notes", h.createNote)
		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/stats", h.stats)
		r.Get("/api/notes/{id}", h.readNote)
		r.Delete("/api/notes/{id}", h.destroyNote)
		r.Get("/api/version", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
