package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/ratelimit"
)

// requestsPerSecond caps the aggregate rate of API queries reaching
// the database.
const requestsPerSecond = 50

// RateLimit smooths incoming API requests through a leaky bucket.
// Requests above the rate are delayed, never rejected.
func RateLimit(rps int) fiber.Handler {
	limiter := ratelimit.New(rps)
	return func(c *fiber.Ctx) error {
		limiter.Take()
		return c.Next()
	}
}
