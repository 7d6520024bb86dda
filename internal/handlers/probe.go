package handlers

import (
	"github.com/gofiber/fiber/v3"

	"wordbook/internal/offline"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	storage offline.Storage
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(storage offline.Storage) *ProbeHandler {
	return &ProbeHandler{storage: storage}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the offline store is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if _, err := h.storage.ListNamespaces(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "offline store unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
