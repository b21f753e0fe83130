package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "X-API-Key"

// QueryName is the query parameter accepted when the header is absent.
const QueryName = "api_key"

// Config configures the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
	// Next skips the middleware when it returns true.
	Next func(c *fiber.Ctx) bool
}

// New returns a middleware rejecting requests without the configured API key.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.ApiKey)

	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" || (cfg.Next != nil && cfg.Next(c)) {
			return c.Next()
		}

		key := c.Get(HeaderName)
		if key == "" {
			key = c.Query(QueryName)
		}

		if subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
