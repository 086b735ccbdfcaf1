package models

import "time"

// User is a registered tracker user. IDs are short generated strings
// (xid) rather than ObjectIDs so they stay easy to paste into the
// add-exercise form.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
