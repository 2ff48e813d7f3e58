package bookingRepo

import (
	"context"

	"hillescape/database"
	"hillescape/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	List(ctx context.Context) ([]models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
