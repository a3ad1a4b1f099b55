// Package server exposes the generator over HTTP
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/gompdf/invoicepdf/internal/logger"
)

// RouterConfig holds the transport settings of the router
type RouterConfig struct {
	CORSOrigins  []string
	MaxBodyBytes int64
}

func New(invoices *Handler, log *zap.Logger, cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(logger.Middleware(log))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", logger.RequestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", logger.RequestIDHeader},
		MaxAge:         300,
	}))
	if cfg.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(cfg.MaxBodyBytes))
	}

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/invoices", invoices.Routes)
	})

	return router
}
