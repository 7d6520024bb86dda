package handlers

import (
	"github.com/gofiber/fiber/v3"

	"wordbook/internal/config"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	cfg *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cfg *config.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// Index renders the lookup page.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title": h.cfg.SiteTitle,
	}, h.cfg))
}
