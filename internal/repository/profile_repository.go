package repository

import (
	"context"
	"time"

	"shipdesk-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// profileKey is the _id of the singleton profile document. The dashboard
// is single-user per deployment, mirroring the original user_profiles
// table that held exactly one row.
const profileKey = "default"

type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		collection: db.Collection("profiles"),
	}
}

// Get returns the saved profile, or (nil, nil) when none has been saved
// yet; callers treat a missing profile as "no personalization".
func (r *ProfileRepository) Get(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": profileKey}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save upserts the singleton profile.
func (r *ProfileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	profile.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"email":       profile.Email,
		"shipNumbers": profile.ShipNumbers,
		"name":        profile.Name,
		"department":  profile.Department,
		"area":        profile.Area,
		"equipment":   profile.Equipment,
		"updatedAt":   profile.UpdatedAt,
	}}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": profileKey}, update, opts)
	return err
}
