package app

import (
	"github.com/avc-dev/shortlinks/internal/handler"
	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.GzipMiddleware(logger))

	r.Get("/api/ping", h.Ping)

	r.Route("/api/shorten", func(r chi.Router) {
		r.Use(middleware.RequesterIdentity)

		r.Post("/", h.CreateLink)
		r.Delete("/", h.DeleteLink)
		r.Get("/quota", h.CustomSlugQuota)
	})

	r.Get("/{code}", h.GetURL)

	return r
}
