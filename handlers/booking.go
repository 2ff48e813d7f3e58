package handlers

import (
	"errors"
	"net/http"

	"hillescape/models"
	"hillescape/services/booking"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid booking request",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.BookingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   vErr.Message,
				"field":   vErr.Field,
			})
			return
		}
		h.Logger.Error("booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to create booking",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking request submitted successfully",
		"data":    resp,
	})
}

// GetBookingByReference handles GET /api/bookings/reference/:reference.
func (h *BookingHandler) GetBookingByReference(c *gin.Context) {
	reference := c.Param("reference")

	record, err := h.BookingSvc.GetByReference(c.Request.Context(), reference)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
			return
		}
		h.Logger.Error("booking lookup failed", zap.String("reference", reference), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": record})
}

// ListBookings handles GET /api/bookings (admin).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.BookingSvc.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("booking listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(bookings),
		"bookings": bookings,
	})
}

// CheckAvailability handles GET /api/bookings/check/availability.
// There is no inventory model; every room type is offered as available.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Availability check working",
	})
}
