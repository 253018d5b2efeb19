package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartbot-stats/internal/database/models"
)

const adminCollectionName = "auth_admins"

// MongoAdminRepository implements AdminRepository for MongoDB.
type MongoAdminRepository struct {
	collection *mongo.Collection
}

// NewMongoAdminRepository creates a new MongoDB admin repository.
func NewMongoAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{
		collection: db.Collection(adminCollectionName),
	}
}

// ListAdmins returns every admin record in storage order, projected to
// the fields the API exposes.
func (r *MongoAdminRepository) ListAdmins(ctx context.Context) ([]models.AdminRecord, error) {
	projection := bson.D{
		{Key: "user_id", Value: 1},
		{Key: "title", Value: 1},
		{Key: "username", Value: 1},
		{Key: "full_name", Value: 1},
		{Key: "auth_date", Value: 1},
		{Key: "auth_time", Value: 1},
		{Key: "auth_by", Value: 1},
		{Key: "_id", Value: 0},
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("failed to find admins: %w", err)
	}
	defer cursor.Close(ctx)

	var admins []models.AdminRecord
	if err = cursor.All(ctx, &admins); err != nil {
		return nil, fmt.Errorf("failed to decode admins: %w", err)
	}
	return admins, nil
}
