package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hillescape/config"
	"hillescape/models"
	"hillescape/services/pricing"

	"go.uber.org/zap"
)

// CreateBooking validates and prices the request, persists the booking and
// dispatches the customer confirmation. The admin alert runs detached; its
// outcome never reaches the caller.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	checkIn, err := parseStayDate(req.CheckIn)
	if err != nil {
		return nil, NewValidationError("checkIn", "invalid date format")
	}
	checkOut, err := parseStayDate(req.CheckOut)
	if err != nil {
		return nil, NewValidationError("checkOut", "invalid date format")
	}

	today := time.Now().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return nil, NewValidationError("checkIn", "check-in date cannot be in the past")
	}

	opts := pricing.DefaultOptions()
	breakdown, err := pricing.Quote(pricing.QuoteInput{
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      req.Guests.Adults,
		Children:    req.Guests.Children,
		Rooms:       req.Guests.Rooms,
		NightlyRate: req.BasePrice,
	}, opts)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDateRange) {
			return nil, NewValidationError("checkOut", "check-out must be after check-in")
		}
		return nil, fmt.Errorf("failed to price booking: %w", err)
	}

	reference, err := s.uniqueReference(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	record := models.Booking{
		BookingReference: reference,
		ResortID:         req.ResortID,
		ResortName:       defaultString(req.ResortName, "Resort "+req.ResortID),
		RoomType:         req.RoomType,
		Location:         req.Location,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           req.Guests,
		Customer:         req.Customer,
		NightlyRate:      req.BasePrice,
		PriceBreakdown:   breakdown,
		TotalAmount:      breakdown.TotalAmount,
		Status:           models.BookingStatusPending,
		CreatedAt:        time.Now(),
	}

	if err := s.Repo.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("reference", reference),
		zap.Float64("totalAmount", breakdown.TotalAmount),
		zap.Int("nights", breakdown.Nights))

	// Customer confirmation is synchronous so the submitter learns which
	// channel carried it. Delivery failure never fails the booking.
	outcome := s.Notification.SendBookingConfirmation(ctx, record)

	if s.EnqueueAdmin != nil {
		if err := s.EnqueueAdmin(reference); err != nil {
			s.Logger.Warn("failed to enqueue admin alert",
				zap.String("reference", reference), zap.Error(err))
		}
	}

	return &models.BookingResponse{
		BookingReference: reference,
		Status:           record.Status,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		TotalAmount:      breakdown.TotalAmount,
		Customer: models.CustomerSummary{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
		},
		PriceBreakdown: breakdown,
		Email: models.EmailReport{
			Sent:     outcome.Delivered,
			Provider: outcome.Provider,
		},
	}, nil
}

// GetByReference returns a stored booking.
func (s *DefaultBookingService) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	return s.Repo.GetByReference(ctx, reference)
}

// ListBookings returns all bookings, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.List(ctx)
}

// uniqueReference generates a reference and verifies it against stored
// bookings, regenerating on collision. After the retry budget the last
// candidate is accepted; uniqueness beyond that is probabilistic and the
// unique index is the final arbiter.
func (s *DefaultBookingService) uniqueReference(ctx context.Context) (string, error) {
	prefix := config.AppConfig.BookingRefPrefix
	var ref string
	for i := 0; i < 3; i++ {
		ref = newBookingReference(prefix)
		exists, err := s.Repo.ReferenceExists(ctx, ref)
		if err != nil {
			return "", err
		}
		if !exists {
			return ref, nil
		}
		s.Logger.Warn("booking reference collision, regenerating", zap.String("reference", ref))
	}
	return ref, nil
}

// parseStayDate accepts "YYYY-MM-DD" or a full RFC3339 timestamp.
func parseStayDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
