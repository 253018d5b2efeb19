package api

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"smartbot-stats/internal/database"
)

// Handler serves the dashboard API endpoints. It holds the read-only
// repositories and the path of the static landing page.
type Handler struct {
	activity  database.ActivityRepository
	bans      database.BanRepository
	admins    database.AdminRepository
	indexFile string
}

// NewHandler creates a Handler with its repository dependencies.
func NewHandler(activity database.ActivityRepository, bans database.BanRepository, admins database.AdminRepository, indexFile string) *Handler {
	return &Handler{
		activity:  activity,
		bans:      bans,
		admins:    admins,
		indexFile: indexFile,
	}
}

// Index serves the dashboard landing page. The file is read from disk
// on every request so the asset can be swapped without a restart.
func (h *Handler) Index(c *fiber.Ctx) error {
	content, err := os.ReadFile(h.indexFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Index file %s not found", h.indexFile)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Index file not found"})
		}
		log.Printf("Error serving index page: %v", err)
		sentry.CaptureException(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to serve index page"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(content)
}

// Stats reports the time-windowed active-user counters. All four
// windows are measured against the same instant so the counts stay
// mutually comparable.
func (h *Handler) Stats(c *fiber.Ctx) error {
	ctx := c.Context()
	now := time.Now().UTC()

	var stats Stats
	windows := []struct {
		dst    *int64
		window time.Duration
	}{
		{&stats.DailyUsers, 24 * time.Hour},
		{&stats.WeeklyUsers, 7 * 24 * time.Hour},
		{&stats.MonthlyUsers, 30 * 24 * time.Hour},
		{&stats.YearlyUsers, 365 * 24 * time.Hour},
	}
	for _, w := range windows {
		count, err := h.activity.CountActiveUsersSince(ctx, now.Add(-w.window))
		if err != nil {
			return h.fail(c, "Failed to retrieve stats", err)
		}
		*w.dst = count
	}

	totalUsers, err := h.activity.CountUsers(ctx)
	if err != nil {
		return h.fail(c, "Failed to retrieve stats", err)
	}
	stats.TotalUsers = totalUsers

	totalGroups, err := h.activity.CountGroups(ctx)
	if err != nil {
		return h.fail(c, "Failed to retrieve stats", err)
	}
	stats.TotalGroups = totalGroups

	log.Println("Successfully retrieved stats")
	return c.JSON(BuildStats(stats, now))
}

// Banlist returns every ban entry. An empty ban collection is a valid
// empty response, not an error.
func (h *Handler) Banlist(c *fiber.Ctx) error {
	banned, err := h.bans.ListBannedUsers(c.Context())
	if err != nil {
		return h.fail(c, "Failed to retrieve banlist", err)
	}
	log.Println("Successfully retrieved banlist")
	return c.JSON(BuildBanlist(banned, time.Now().UTC()))
}

// Adminlist returns the synthetic owner entry followed by every stored
// admin record.
func (h *Handler) Adminlist(c *fiber.Ctx) error {
	admins, err := h.admins.ListAdmins(c.Context())
	if err != nil {
		return h.fail(c, "Failed to retrieve adminlist", err)
	}
	log.Println("Successfully retrieved adminlist")
	return c.JSON(BuildAdminlist(admins, time.Now().UTC()))
}

// fail logs and reports the underlying error, answering the caller
// with a generic message only.
func (h *Handler) fail(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	sentry.CaptureException(err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}
