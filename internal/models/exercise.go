package models

import "time"

// ExerciseLog is a single exercise entry recorded against a user.
// The owning user is referenced by id and the username is copied in at
// creation time, so a log stays readable even without a join.
type ExerciseLog struct {
	ID          string    `bson:"_id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	Username    string    `bson:"username" json:"username"`
	Description string    `bson:"description" json:"description"`
	Duration    float64   `bson:"duration" json:"duration"`
	Date        time.Time `bson:"date" json:"date"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
