package middleware

import (
	"net/http"

	"github.com/evermore-weddings/evermore/internal/logger"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler handles errors in a consistent way
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Default status code
	code := fiber.StatusInternalServerError

	// Check if it's a fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Log the error
	logger.Get().Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", code).
		Msg("HTTP error")

	// Return JSON response
	return c.Status(code).JSON(fiber.Map{
		"error": http.StatusText(code),
	})
}
