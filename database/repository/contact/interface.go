package contactRepo

import (
	"context"

	"hillescape/database"
	"hillescape/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) (string, error)
	List(ctx context.Context) ([]models.Contact, error)
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a ContactRepository backed by MongoDB.
func NewMongoContactRepo() ContactRepository {
	return &mongoContactRepo{
		coll: database.DB().Collection("contacts"),
	}
}
