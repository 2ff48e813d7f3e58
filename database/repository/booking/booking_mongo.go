package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"hillescape/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking record.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking %s: %w", booking.BookingReference, err)
	}
	return nil
}

// GetByReference returns a booking by its reference.
func (r *mongoBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"bookingReference": reference}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", reference, err)
	}
	return &booking, nil
}

// ReferenceExists reports whether a booking with the given reference is
// already persisted.
func (r *mongoBookingRepo) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"bookingReference": reference})
	if err != nil {
		return false, fmt.Errorf("reference lookup failed: %w", err)
	}
	return count > 0, nil
}

// List returns all bookings, newest first.
func (r *mongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("booking listing query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
