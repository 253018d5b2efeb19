package models

// BannedUser represents an entry in the moderation store's ban list.
// BanDate is untyped because the moderation process stores either a
// plain string or a BSON datetime.
type BannedUser struct {
	UserID   int64       `bson:"user_id"`
	Username string      `bson:"username,omitempty"`
	Reason   string      `bson:"reason,omitempty"`
	BanDate  interface{} `bson:"ban_date,omitempty"`
}
