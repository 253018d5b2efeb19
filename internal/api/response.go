package api

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartbot-stats/internal/database/models"
)

// Every response carries the same ownership envelope.
const (
	APIOwner = "@ISmartCoder"
	APIDev   = "@TheSmartDev"
)

const undefinedValue = "Undefined"

// ownerEntry is the constant first element of every adminlist
// response. It is never persisted and exists only in API output.
var ownerEntry = AdminEntry{
	UserID:   7666341631,
	FullName: "Abir Arafat Chawdhury 🇧🇩",
	Title:    "Owner",
	Username: "@ISmartCoder",
	AuthDate: "Infinity",
	AuthTime: "Infinity",
	AuthBy:   "Abir Arafat Chawdhury",
}

// Stats holds the six usage counters, all taken at one snapshot
// instant.
type Stats struct {
	DailyUsers   int64 `json:"daily_users"`
	WeeklyUsers  int64 `json:"weekly_users"`
	MonthlyUsers int64 `json:"monthly_users"`
	YearlyUsers  int64 `json:"yearly_users"`
	TotalUsers   int64 `json:"total_users"`
	TotalGroups  int64 `json:"total_groups"`
}

// StatsResponse is the body of GET /api/stats.
type StatsResponse struct {
	APIOwner  string `json:"api_owner"`
	APIDev    string `json:"api_dev"`
	Stats     Stats  `json:"stats"`
	Timestamp string `json:"timestamp"`
}

// BannedEntry is one element of the banlist response. FullName is
// deliberately populated from the stored username; the rename is part
// of the public contract.
type BannedEntry struct {
	UserID   int64       `json:"user_id"`
	FullName string      `json:"full_name"`
	Reason   string      `json:"reason"`
	BanDate  interface{} `json:"ban_date"`
}

// BanlistResponse is the body of GET /api/banlist.
type BanlistResponse struct {
	APIOwner    string        `json:"api_owner"`
	APIDev      string        `json:"api_dev"`
	BannedUsers []BannedEntry `json:"banned_users"`
	TotalBanned int           `json:"total_banned"`
	Timestamp   string        `json:"timestamp"`
}

// AdminEntry is one element of the adminlist response.
type AdminEntry struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Title    string `json:"title"`
	Username string `json:"username"`
	AuthDate string `json:"auth_date"`
	AuthTime string `json:"auth_time"`
	AuthBy   string `json:"auth_by"`
}

// AdminlistResponse is the body of GET /api/adminlist.
type AdminlistResponse struct {
	APIOwner    string       `json:"api_owner"`
	APIDev      string       `json:"api_dev"`
	Admins      []AdminEntry `json:"admins"`
	TotalAdmins int          `json:"total_admins"`
	Timestamp   string       `json:"timestamp"`
}

// BuildStats assembles the stats response around counters taken at the
// given snapshot instant.
func BuildStats(stats Stats, now time.Time) StatsResponse {
	return StatsResponse{
		APIOwner:  APIOwner,
		APIDev:    APIDev,
		Stats:     stats,
		Timestamp: formatTimestamp(now),
	}
}

// BuildBanlist maps ban records into the public banlist shape. An
// empty input yields an explicit empty list, never a nil slice.
func BuildBanlist(banned []models.BannedUser, now time.Time) BanlistResponse {
	entries := make([]BannedEntry, 0, len(banned))
	for _, user := range banned {
		fullName := user.Username
		if fullName == "" {
			fullName = strconv.FormatInt(user.UserID, 10)
		}
		reason := user.Reason
		if reason == "" {
			reason = undefinedValue
		}
		entries = append(entries, BannedEntry{
			UserID:   user.UserID,
			FullName: fullName,
			Reason:   reason,
			BanDate:  banDateValue(user.BanDate),
		})
	}
	return BanlistResponse{
		APIOwner:    APIOwner,
		APIDev:      APIDev,
		BannedUsers: entries,
		TotalBanned: len(entries),
		Timestamp:   formatTimestamp(now),
	}
}

// BuildAdminlist maps admin records into the public adminlist shape,
// prepending the constant owner entry. Fetched records keep their
// storage order.
func BuildAdminlist(admins []models.AdminRecord, now time.Time) AdminlistResponse {
	entries := make([]AdminEntry, 0, len(admins)+1)
	entries = append(entries, ownerEntry)
	for _, admin := range admins {
		entries = append(entries, AdminEntry{
			UserID:   admin.UserID,
			FullName: orDefault(admin.FullName, "Unknown"),
			Title:    admin.Title,
			Username: orDefault(admin.Username, "None"),
			AuthDate: authDateValue(admin.AuthDate),
			AuthTime: authTimeValue(admin.AuthTime, now),
			AuthBy:   orDefault(admin.AuthBy, "Unknown"),
		})
	}
	return AdminlistResponse{
		APIOwner:    APIOwner,
		APIDev:      APIDev,
		Admins:      entries,
		TotalAdmins: len(entries),
		Timestamp:   formatTimestamp(now),
	}
}

// banDateValue passes stored ban dates through unchanged, rendering
// BSON datetimes as RFC 3339 and absent values as "Undefined".
func banDateValue(v interface{}) interface{} {
	if v == nil {
		return undefinedValue
	}
	if t, ok := asTime(v); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return v
}

// authDateValue renders auth_date as YYYY-MM-DD only when the stored
// value is a real timestamp. Anything else renders as "Unknown", even
// for records where auth_time would be a usable substitute.
func authDateValue(v interface{}) string {
	if t, ok := asTime(v); ok {
		return t.UTC().Format("2006-01-02")
	}
	return "Unknown"
}

// authTimeValue renders auth_time as HH:MM:SS, falling back to the
// snapshot instant when the stored value is absent or not a timestamp.
func authTimeValue(v interface{}, now time.Time) string {
	if t, ok := asTime(v); ok {
		return t.UTC().Format("15:04:05")
	}
	return now.UTC().Format("15:04:05")
}

// asTime normalizes the two timestamp representations the driver hands
// back when decoding into interface{}.
func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func formatTimestamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
