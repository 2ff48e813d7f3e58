package models

import "time"

// ContactStatusNew marks a contact message that nobody has looked at yet.
const ContactStatusNew = "new"

// Contact is a free-form message captured from the contact form.
type Contact struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Email     string    `bson:"email" json:"email" binding:"required,email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string    `bson:"message" json:"message" binding:"required"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
