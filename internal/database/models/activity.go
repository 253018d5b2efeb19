package models

import "time"

// ActivityRecord tracks the last interaction time of a user or group
// chat with the bot. Records are created and updated by the bot
// process; this service only reads them.
type ActivityRecord struct {
	UserID       int64     `bson:"user_id"`
	IsGroup      bool      `bson:"is_group"`
	LastActivity time.Time `bson:"last_activity"`
}
