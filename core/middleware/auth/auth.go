package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Config holds the API key middleware settings.
type Config struct {
	// ApiKey is the expected key. Requests are checked against it when Required is set.
	ApiKey string
	// Required rejects requests without a matching key. An empty ApiKey with Required set rejects everything.
	Required bool
	// SkipPaths are path prefixes served without a key (e.g. "/swagger").
	SkipPaths []string
}

// New returns a middleware validating the X-API-Key header (or a Bearer token).
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Required {
			return c.Next()
		}

		for _, prefix := range cfg.SkipPaths {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}

		key := c.Get("X-API-Key")
		if key == "" {
			key = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		}

		if cfg.ApiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "unauthorized",
			})
		}

		return c.Next()
	}
}
