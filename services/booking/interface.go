package booking

import (
	"context"

	bookingRepo "hillescape/database/repository/booking"
	"hillescape/models"
	"hillescape/services/notification"

	"go.uber.org/zap"
)

// BookingService defines the interface for the booking lifecycle owned by
// this backend: accept, price, persist, notify.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// EnqueueAdminAlert hands a booking reference to the detached notification
// worker. Enqueue failures are logged and swallowed.
type EnqueueAdminAlert func(reference string) error

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Notification notification.NotificationService
	EnqueueAdmin EnqueueAdminAlert
	Logger       *zap.Logger
}
