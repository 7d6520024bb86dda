// Package middleware contains the request-scoped middleware.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// HeaderRequestID is the correlation-ID header honored and set by RequestID.
const HeaderRequestID = "X-Request-ID"

// RequestID stamps every request with a correlation ID. An incoming
// X-Request-ID is kept so IDs survive proxies; otherwise a fresh UUID is
// generated. The ID is echoed on the response and stored in Locals for
// handlers to log.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}
