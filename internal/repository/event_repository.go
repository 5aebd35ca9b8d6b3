package repository

import (
	"context"

	"shipdesk-be/internal/engine"
	"shipdesk-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		collection: db.Collection("events"),
	}
}

// List returns all events in startDate order (lexicographic order works
// for the ISO-like dates the extractor emits; unparseable dates sort
// wherever the text puts them, which is acceptable for a list view).
func (r *EventRepository) List(ctx context.Context) ([]models.CalendarEvent, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "startDate", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.CalendarEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) Insert(ctx context.Context, event *models.CalendarEvent) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// DistinctShips enumerates every distinct hull number appearing in the
// event collection. Ship numbers are stored as comma-separated lists, so
// the distinct field values are split and deduplicated token by token.
func (r *EventRepository) DistinctShips(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "shipNumber", bson.M{"shipNumber": bson.M{"$ne": ""}})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var ships []string
	for _, v := range values {
		csv, ok := v.(string)
		if !ok {
			continue
		}
		for _, token := range engine.SplitShipList(csv) {
			if !seen[token] {
				seen[token] = true
				ships = append(ships, token)
			}
		}
	}

	return ships, nil
}

// Clear removes every event. Used by the maintenance endpoint.
func (r *EventRepository) Clear(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
