// Package handlers contains the HTML-facing request handlers.
package handlers

import (
	"github.com/gofiber/fiber/v3"

	"wordbook/internal/config"
)

// MergeBranding adds the site branding fields every template expects.
func MergeBranding(m fiber.Map, cfg *config.Config) fiber.Map {
	m["SiteTitle"] = cfg.SiteTitle
	m["SiteTagline"] = cfg.SiteTagline
	m["SiteFooter"] = cfg.SiteFooter
	return m
}
