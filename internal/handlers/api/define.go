// Package api contains the JSON API handlers.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"wordbook/internal/dictionary"
	"wordbook/internal/validation"
)

// DefineHandler serves word definition lookups.
type DefineHandler struct {
	dict *dictionary.Client
}

// NewDefineHandler creates a new define handler.
func NewDefineHandler(dict *dictionary.Client) *DefineHandler {
	return &DefineHandler{dict: dict}
}

// Define handles GET /api/define/:word.
func (h *DefineHandler) Define(c fiber.Ctx) error {
	word := c.Params("word")
	if ok, msg := validation.ValidateWord(word); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	entries, err := h.dict.Lookup(c.Context(), word)
	if err != nil {
		var notFound *dictionary.NotFoundError
		if errors.As(err, &notFound) {
			return jsonError(c, fiber.StatusNotFound, notFound.Error())
		}
		var netErr *dictionary.NetworkError
		if errors.As(err, &netErr) {
			return jsonError(c, fiber.StatusBadGateway, "the dictionary service is unavailable")
		}
		return err
	}

	return jsonSuccess(c, entries)
}

// ClearCache handles POST /api/cache/clear.
func (h *DefineHandler) ClearCache(c fiber.Ctx) error {
	h.dict.ClearCache()
	return jsonSuccess(c, fiber.Map{"cleared": true})
}
