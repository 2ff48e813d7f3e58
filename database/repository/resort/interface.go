package resortRepo

import (
	"context"

	"hillescape/database"
	"hillescape/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows a resort listing. Zero values mean "no constraint".
type Filter struct {
	Location  string
	MinPrice  float64
	MaxPrice  float64
	Amenities []string
	Tags      []string
	Search    string
}

type ResortRepository interface {
	List(ctx context.Context, f Filter) ([]models.Resort, error)
	GetByID(ctx context.Context, id int) (*models.Resort, error)
	Create(ctx context.Context, resort *models.Resort) error
	EnsureIndexes() error
}

type mongoResortRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoResortRepo returns a ResortRepository backed by MongoDB with a
// Redis listing cache.
func NewMongoResortRepo(cache *redis.Client) ResortRepository {
	return &mongoResortRepo{
		coll:  database.DB().Collection("resorts"),
		cache: cache,
	}
}
