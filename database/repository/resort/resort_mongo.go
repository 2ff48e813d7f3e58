package resortRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hillescape/models"
	"hillescape/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns resorts matching the filter, best rated first. Results are
// served from the Redis cache when a matching listing is fresh.
func (r *mongoResortRepo) List(ctx context.Context, f Filter) ([]models.Resort, error) {
	cacheKey := utils.ResortCachePrefix + f.cacheKey()
	if cached, err := r.cache.Get(ctx, cacheKey).Result(); err == nil {
		var resorts []models.Resort
		if err := json.Unmarshal([]byte(cached), &resorts); err == nil {
			return resorts, nil
		}
	}

	filter := f.toBSON()
	findOpts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("resort listing query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var resorts []models.Resort
	if err := cursor.All(ctx, &resorts); err != nil {
		return nil, fmt.Errorf("failed to decode resorts: %w", err)
	}

	if data, err := json.Marshal(resorts); err == nil {
		r.cache.Set(ctx, cacheKey, data, utils.ResortCacheTTL)
	}
	return resorts, nil
}

// GetByID returns a resort by its public numeric ID.
func (r *mongoResortRepo) GetByID(ctx context.Context, id int) (*models.Resort, error) {
	var resort models.Resort
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&resort)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch resort %d: %w", id, err)
	}
	return &resort, nil
}

// Create inserts a new resort and invalidates cached listings.
func (r *mongoResortRepo) Create(ctx context.Context, resort *models.Resort) error {
	resort.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, resort); err != nil {
		return fmt.Errorf("failed to insert resort: %w", err)
	}
	r.invalidateListings(ctx)
	return nil
}

func (r *mongoResortRepo) invalidateListings(ctx context.Context) {
	iter := r.cache.Scan(ctx, 0, utils.ResortCachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		r.cache.Del(ctx, keys...)
	}
}

func (f Filter) toBSON() bson.M {
	filter := bson.M{}
	if f.Location != "" && f.Location != "All" {
		filter["location"] = f.Location
	}
	if f.MinPrice > 0 || f.MaxPrice > 0 {
		price := bson.M{}
		if f.MinPrice > 0 {
			price["$gte"] = f.MinPrice
		}
		if f.MaxPrice > 0 {
			price["$lte"] = f.MaxPrice
		}
		filter["price"] = price
	}
	if len(f.Amenities) > 0 {
		filter["amenities"] = bson.M{"$in": f.Amenities}
	}
	if len(f.Tags) > 0 {
		filter["tags"] = bson.M{"$in": f.Tags}
	}
	if f.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": f.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}
	return filter
}

// cacheKey builds a canonical string identifying the filter for cache lookups.
func (f Filter) cacheKey() string {
	return strings.Join([]string{
		f.Location,
		fmt.Sprintf("%.0f-%.0f", f.MinPrice, f.MaxPrice),
		strings.Join(f.Amenities, ","),
		strings.Join(f.Tags, ","),
		f.Search,
	}, "|")
}
