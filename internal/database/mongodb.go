package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoDatabaseName is returned when a connection string does not
// carry the target database name in its appName query parameter.
var ErrNoDatabaseName = errors.New("no database name found in connection string (missing 'appName' query param)")

// DatabaseNameFromURI extracts the target database name from the
// connection string's appName query parameter.
func DatabaseNameFromURI(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid connection string: %w", err)
	}
	name := parsed.Query().Get("appName")
	if name == "" {
		return "", ErrNoDatabaseName
	}
	return name, nil
}

// Connect establishes a connection to MongoDB scoped to the database
// named in the URI's appName parameter. It returns the client, the
// database handle, and an error if the connection or the liveness
// ping fails. Callers must Disconnect the client on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, *mongo.Database, error) {
	dbName, err := DatabaseNameFromURI(uri)
	if err != nil {
		return nil, nil, err
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Send a ping to confirm a successful connection
	var result bson.M
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Decode(&result); err != nil {
		_ = client.Disconnect(ctx) // Attempt to disconnect on ping failure
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	log.Printf("Successfully connected and pinged MongoDB (database %q)", dbName)

	return client, client.Database(dbName), nil
}
