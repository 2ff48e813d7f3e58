package models

import "time"

// Booking status values. Status transitions past "pending" are driven by the
// operations team, not by this service.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
)

// Guests describes the occupancy of a stay.
type Guests struct {
	Adults   int `bson:"adults" json:"adults" binding:"required,min=1"`
	Children int `bson:"children" json:"children" binding:"min=0"`
	Rooms    int `bson:"rooms" json:"rooms" binding:"required,min=1"`
}

// Customer holds the contact details of the person making a booking.
type Customer struct {
	Name    string `bson:"name" json:"name" binding:"required"`
	Email   string `bson:"email" json:"email" binding:"required,email"`
	Phone   string `bson:"phone" json:"phone" binding:"required"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// BookingRequest is the inbound payload for creating a booking.
// Dates arrive as "YYYY-MM-DD" (an RFC3339 timestamp is also accepted).
type BookingRequest struct {
	ResortID   string   `json:"resortId" binding:"required"`
	ResortName string   `json:"resortName"`
	RoomType   string   `json:"roomType" binding:"required"`
	Location   string   `json:"location"`
	CheckIn    string   `json:"checkIn" binding:"required"`
	CheckOut   string   `json:"checkOut" binding:"required"`
	Guests     Guests   `json:"guests" binding:"required"`
	Customer   Customer `json:"customer" binding:"required"`
	BasePrice  float64  `json:"basePrice"`
}

// PriceBreakdown is the itemized result of pricing a stay. All amounts are
// whole currency units; the struct is never mutated after computation.
type PriceBreakdown struct {
	Nights            int     `bson:"nights" json:"nights"`
	Rooms             int     `bson:"rooms" json:"rooms"`
	BasePrice         float64 `bson:"basePrice" json:"basePrice"`
	ExtraAdultsCharge float64 `bson:"extraAdultsCharge" json:"extraAdultsCharge"`
	Subtotal          float64 `bson:"subtotal" json:"subtotal"`
	TaxAmount         float64 `bson:"taxAmount" json:"taxAmount"`
	TotalAmount       float64 `bson:"totalAmount" json:"totalAmount"`
}

// Booking is the persisted booking record.
type Booking struct {
	BookingReference string         `bson:"bookingReference" json:"bookingReference"`
	ResortID         string         `bson:"resortId" json:"resortId"`
	ResortName       string         `bson:"resortName" json:"resortName"`
	RoomType         string         `bson:"roomType" json:"roomType"`
	Location         string         `bson:"location" json:"location"`
	CheckIn          time.Time      `bson:"checkIn" json:"checkIn"`
	CheckOut         time.Time      `bson:"checkOut" json:"checkOut"`
	Guests           Guests         `bson:"guests" json:"guests"`
	Customer         Customer       `bson:"customer" json:"customer"`
	NightlyRate      float64        `bson:"nightlyRate" json:"nightlyRate"`
	PriceBreakdown   PriceBreakdown `bson:"priceBreakdown" json:"priceBreakdown"`
	TotalAmount      float64        `bson:"totalAmount" json:"totalAmount"`
	Status           string         `bson:"status" json:"status"`
	CreatedAt        time.Time      `bson:"createdAt" json:"createdAt"`
}

// CustomerSummary is the subset of customer details echoed in responses.
type CustomerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EmailReport tells the submitter whether their confirmation was delivered
// and through which channel.
type EmailReport struct {
	Sent     bool   `json:"sent"`
	Provider string `json:"provider"`
}

// BookingResponse is returned to the submitter after a booking is accepted.
type BookingResponse struct {
	BookingReference string          `json:"bookingReference"`
	Status           string          `json:"status"`
	CheckIn          string          `json:"checkIn"`
	CheckOut         string          `json:"checkOut"`
	TotalAmount      float64         `json:"totalAmount"`
	Customer         CustomerSummary `json:"customer"`
	PriceBreakdown   PriceBreakdown  `json:"priceBreakdown"`
	Email            EmailReport     `json:"email"`
}
