package api

import (
	"errors"
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
)

// NewApp builds the Fiber application. Any error escaping a handler is
// converted into a generic JSON response at this boundary; internal
// detail never reaches the caller.
func NewApp(prefork bool) *fiber.App {
	return fiber.New(fiber.Config{
		AppName: "Smart Bot Stats API",
		Prefork: prefork,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Printf("Unhandled error on %s: %v", c.Path(), err)
				sentry.CaptureException(err)
				return c.Status(code).JSON(fiber.Map{"error": "Internal server error"})
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
}

// RegisterRoutes attaches the dashboard endpoints to the app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.Index)

	api := app.Group("/api", RateLimit(requestsPerSecond))
	api.Get("/stats", h.Stats)
	api.Get("/banlist", h.Banlist)
	api.Get("/adminlist", h.Adminlist)
}
