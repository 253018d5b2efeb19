package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const activityCollectionName = "user_activity"

// MongoActivityRepository implements ActivityRepository for MongoDB.
type MongoActivityRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityRepository creates a new MongoDB activity repository.
func NewMongoActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{
		collection: db.Collection(activityCollectionName),
	}
}

// CountActiveUsersSince counts individual users active at or after the
// given cutoff. Group chats are excluded.
func (r *MongoActivityRepository) CountActiveUsersSince(ctx context.Context, since time.Time) (int64, error) {
	filter := bson.M{
		"is_group":      false,
		"last_activity": bson.M{"$gte": since},
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count users active since %s: %w", since.Format(time.RFC3339), err)
	}
	return count, nil
}

// CountUsers counts every individual user in the activity store.
func (r *MongoActivityRepository) CountUsers(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"is_group": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountGroups counts every group chat in the activity store.
func (r *MongoActivityRepository) CountGroups(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"is_group": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count groups: %w", err)
	}
	return count, nil
}
