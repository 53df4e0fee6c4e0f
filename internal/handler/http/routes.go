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

	router.Get("/login", h.login)
	router.Get("/auth/callback", h.callback)
	router.Get("/logout", h.logout)

	router.Get("/api/session", h.session)
	router.Get("/api/version", h.getServerVersion)

	return router
}
