package database

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultDatabaseName = "exercise-track"

// Connect establishes the MongoDB connection and returns the client
// together with the database named in the URI (or the default). The
// returned handles are injected into the repositories; nothing here is
// kept as package state.
func Connect(mongoURI string) (*mongo.Client, *mongo.Database, error) {
	// Longer timeout to cover Atlas connections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, err
	}

	// Ping with a separate context so a slow handshake surfaces here
	// rather than on the first request.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, err
	}

	log.Println("✅ Connected to MongoDB")
	return client, client.Database(databaseName(mongoURI)), nil
}

// databaseName extracts the database name from a connection string of
// the form mongodb://host/dbname?opts, falling back to the default.
func databaseName(mongoURI string) string {
	parts := strings.Split(mongoURI, "/")
	if len(parts) < 4 {
		return defaultDatabaseName
	}
	name := strings.Split(parts[len(parts)-1], "?")[0]
	if name == "" {
		return defaultDatabaseName
	}
	return name
}

func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
