package database

import (
	"context"
	"time"

	"smartbot-stats/internal/database/models"
)

// ActivityRepository exposes read-only counters over the bot's
// activity records.
type ActivityRepository interface {
	// CountActiveUsersSince counts individual users whose last
	// interaction is at or after the given instant.
	CountActiveUsersSince(ctx context.Context, since time.Time) (int64, error)
	// CountUsers counts all individual users ever seen.
	CountUsers(ctx context.Context) (int64, error)
	// CountGroups counts all group chats ever seen.
	CountGroups(ctx context.Context) (int64, error)
}

// BanRepository exposes read-only access to the ban list.
type BanRepository interface {
	// ListBannedUsers returns every ban entry, unfiltered.
	ListBannedUsers(ctx context.Context) ([]models.BannedUser, error)
}

// AdminRepository exposes read-only access to the authorized admins.
type AdminRepository interface {
	// ListAdmins returns every admin record in storage order.
	ListAdmins(ctx context.Context) ([]models.AdminRecord, error)
}
