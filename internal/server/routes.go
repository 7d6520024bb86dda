package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wordbook/internal/dictionary"
	"wordbook/internal/handlers"
	"wordbook/internal/handlers/api"
	"wordbook/internal/offline"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(dict *dictionary.Client, storage offline.Storage) {
	// Initialize handlers
	pageHandler := handlers.NewPageHandler(s.Cfg)
	probeHandler := handlers.NewProbeHandler(storage)
	defineHandler := api.NewDefineHandler(dict)

	// Pages
	s.App.Get("/", pageHandler.Index)

	// JSON API
	s.App.Get("/api/define/:word", defineHandler.Define)
	s.App.Post("/api/cache/clear", defineHandler.ClearCache)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
