package models

// AdminRecord represents an authorized admin as stored by the
// moderation process. AuthDate and AuthTime are untyped because
// existing records hold a mix of BSON datetimes and strings; the
// response layer decides how each variant is rendered.
type AdminRecord struct {
	UserID   int64       `bson:"user_id"`
	Title    string      `bson:"title"`
	Username string      `bson:"username,omitempty"`
	FullName string      `bson:"full_name,omitempty"`
	AuthDate interface{} `bson:"auth_date,omitempty"`
	AuthTime interface{} `bson:"auth_time,omitempty"`
	AuthBy   string      `bson:"auth_by,omitempty"`
}
