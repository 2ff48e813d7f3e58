package models

import "time"

// Resort is a bookable property in the catalogue. The numeric ID is the
// public identifier used by the frontend; Mongo's _id is not exposed.
type Resort struct {
	ID           int       `bson:"id" json:"id" binding:"required"`
	Name         string    `bson:"name" json:"name" binding:"required"`
	Location     string    `bson:"location" json:"location" binding:"required"`
	Description  string    `bson:"description" json:"description" binding:"required"`
	Price        float64   `bson:"price" json:"price" binding:"required"`
	PriceDisplay string    `bson:"priceDisplay,omitempty" json:"priceDisplay,omitempty"`
	Rating       float64   `bson:"rating" json:"rating"`
	Reviews      int       `bson:"reviews" json:"reviews"`
	Image        string    `bson:"image,omitempty" json:"image,omitempty"`
	Amenities    []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Tags         []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Distance     string    `bson:"distance,omitempty" json:"distance,omitempty"`
	Weather      string    `bson:"weather,omitempty" json:"weather,omitempty"`
	Season       string    `bson:"season,omitempty" json:"season,omitempty"`
	Special      string    `bson:"special,omitempty" json:"special,omitempty"`
	Rooms        []string  `bson:"rooms,omitempty" json:"rooms,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
