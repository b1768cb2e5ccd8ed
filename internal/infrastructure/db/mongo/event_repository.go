package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/styledecor/booking-api/internal/core/domain"
)

const collectionEvents = "booking_events"

// EventRepository persists booking lifecycle events to the audit collection.
type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionEvents)}
}

// InsertEvent appends one audit record.
func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.BookingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"booking_id":   event.BookingID,
		"action":       event.Action,
		"status":       string(event.Status),
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if event.Actor != "" {
		doc["actor"] = event.Actor
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
