package repository

import (
	"context"

	"shipdesk-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmailRepository struct {
	collection *mongo.Collection
}

func NewEmailRepository(db *mongo.Database) *EmailRepository {
	return &EmailRepository{
		collection: db.Collection("emails"),
	}
}

// List returns emails, newest first, optionally restricted to one
// classification label.
func (r *EmailRepository) List(ctx context.Context, classification string) ([]models.Email, error) {
	filter := bson.M{}
	if classification != "" {
		filter["classification"] = classification
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var emails []models.Email
	if err = cursor.All(ctx, &emails); err != nil {
		return nil, err
	}

	return emails, nil
}

func (r *EmailRepository) GetByID(ctx context.Context, emailID string) (*models.Email, error) {
	var email models.Email
	err := r.collection.FindOne(ctx, bson.M{"_id": emailID}).Decode(&email)
	if err != nil {
		return nil, err
	}
	return &email, nil
}

func (r *EmailRepository) Upsert(ctx context.Context, email *models.Email) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": email.ID}, email, opts)
	return err
}

func (r *EmailRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// ClassificationStats aggregates email counts per classification label.
func (r *EmailRepository) ClassificationStats(ctx context.Context) (*models.ClassificationStats, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$classification",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Label string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &models.ClassificationStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Label {
		case models.ClassificationTask:
			stats.Task = row.Count
		case models.ClassificationMeeting:
			stats.Meeting = row.Count
		case models.ClassificationApproval:
			stats.Approval = row.Count
		case models.ClassificationNotice:
			stats.Notice = row.Count
		default:
			// Empty label counts as unclassified
			stats.Unclassified += row.Count
		}
	}

	return stats, nil
}
