// Package mongodb implements the repository interfaces over the two
// MongoDB collections, users and exercise_logs.
package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercise_logs"
)

// EnsureIndexes creates the unique index on users.name. This closes
// the check-then-insert race on user creation: a concurrent duplicate
// insert fails with a duplicate-key error instead of producing two
// users with the same name.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
