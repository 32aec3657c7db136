package middleware

import (
	"time"

	"github.com/evermore-weddings/evermore/internal/logger"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one structured line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		event := logger.Get().Info()
		if err != nil || c.Response().StatusCode() >= 500 {
			event = logger.Get().Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("ip", c.IP()).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}
