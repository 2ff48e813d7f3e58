package contactRepo

import (
	"context"
	"fmt"
	"time"

	"hillescape/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new contact message and returns its ID.
func (r *mongoContactRepo) Create(ctx context.Context, contact *models.Contact) (string, error) {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.Status == "" {
		contact.Status = models.ContactStatusNew
	}
	contact.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, contact); err != nil {
		return "", fmt.Errorf("failed to insert contact: %w", err)
	}
	return contact.ID, nil
}

// List returns all contact messages, newest first.
func (r *mongoContactRepo) List(ctx context.Context) ([]models.Contact, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("contact listing query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}
