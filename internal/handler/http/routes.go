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
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/prefs", func(r chi.Router) {
		r.Get("/", h.listPreferences)
		r.Post("/flush", h.flushPreferences)
		r.Post("/encrypt", h.encryptValue)
		r.Get("/{key}", h.getPreference)
		r.Put("/{key}", h.setPreference)
		r.Delete("/{key}", h.deletePreference)
		r.Delete("/", h.clearPreferences)
	})

	// key administration requires an admin token
	router.Route("/api/keys", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listKeys)
		r.Post("/", h.addKey)
		r.Delete("/", h.clearKeys)
		r.Delete("/{index}", h.removeKey)
		r.Put("/delimiter", h.setDelimiter)
		r.Get("/backup", h.backupKeys)
		r.Post("/restore", h.restoreKeys)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
