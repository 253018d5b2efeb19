package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"smartbot-stats/internal/database/models"
)

const bannedCollectionName = "banned_users"

// MongoBanRepository implements BanRepository for MongoDB.
type MongoBanRepository struct {
	collection *mongo.Collection
}

// NewMongoBanRepository creates a new MongoDB ban repository.
func NewMongoBanRepository(db *mongo.Database) *MongoBanRepository {
	return &MongoBanRepository{
		collection: db.Collection(bannedCollectionName),
	}
}

// ListBannedUsers returns every ban entry, with no filter or limit.
func (r *MongoBanRepository) ListBannedUsers(ctx context.Context) ([]models.BannedUser, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find banned users: %w", err)
	}
	defer cursor.Close(ctx)

	var banned []models.BannedUser
	if err = cursor.All(ctx, &banned); err != nil {
		return nil, fmt.Errorf("failed to decode banned users: %w", err)
	}
	return banned, nil
}
