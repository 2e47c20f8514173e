package throttle

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// New returns a middleware admitting at most perMinute requests per minute
// (bursting up to perMinute). Rejected requests get 429.
// A non-positive perMinute disables throttling.
func New(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "too many sync requests",
				"details": "retry later",
			})
		}
		return c.Next()
	}
}
