package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	resortRepo "hillescape/database/repository/resort"
	"hillescape/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeResortRepo struct {
	resorts    []models.Resort
	listErr    error
	lastFilter resortRepo.Filter
	created    []models.Resort
}

func (f *fakeResortRepo) List(_ context.Context, filter resortRepo.Filter) ([]models.Resort, error) {
	f.lastFilter = filter
	return f.resorts, f.listErr
}

func (f *fakeResortRepo) GetByID(_ context.Context, id int) (*models.Resort, error) {
	for i := range f.resorts {
		if f.resorts[i].ID == id {
			return &f.resorts[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeResortRepo) Create(_ context.Context, r *models.Resort) error {
	f.created = append(f.created, *r)
	return nil
}

func (f *fakeResortRepo) EnsureIndexes() error { return nil }

func resortRouter(repo resortRepo.ResortRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewResortHandler(repo, zap.NewNop())
	r := gin.New()
	r.GET("/api/resorts", h.ListResorts)
	r.GET("/api/resorts/:id", h.GetResortByID)
	r.POST("/api/resorts", h.CreateResort)
	return r
}

func sampleResorts() []models.Resort {
	return []models.Resort{
		{ID: 1, Name: "Deluxe Family Room", Location: "Sholayar Dam City", Description: "family room", Price: 2603, Rating: 4.4},
		{ID: 3, Name: "Valparai Emerald Resort & Spa", Location: "Valparai", Description: "tea gardens", Price: 4800, Rating: 4.9},
	}
}

func TestListResorts(t *testing.T) {
	repo := &fakeResortRepo{resorts: sampleResorts()}
	r := resortRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resorts", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool            `json:"success"`
		Count   int             `json:"count"`
		Resorts []models.Resort `json:"resorts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Count)
}

func TestListResortsParsesFilters(t *testing.T) {
	repo := &fakeResortRepo{}
	r := resortRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/resorts?location=Valparai&minPrice=2000&maxPrice=5000&amenities=Spa,WiFi&tags=Luxury&search=emerald", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Valparai", repo.lastFilter.Location)
	assert.Equal(t, 2000.0, repo.lastFilter.MinPrice)
	assert.Equal(t, 5000.0, repo.lastFilter.MaxPrice)
	assert.Equal(t, []string{"Spa", "WiFi"}, repo.lastFilter.Amenities)
	assert.Equal(t, []string{"Luxury"}, repo.lastFilter.Tags)
	assert.Equal(t, "emerald", repo.lastFilter.Search)
}

func TestListResortsIgnoresMalformedPriceFilters(t *testing.T) {
	repo := &fakeResortRepo{}
	r := resortRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resorts?minPrice=cheap", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, repo.lastFilter.MinPrice)
}

func TestGetResortByID(t *testing.T) {
	repo := &fakeResortRepo{resorts: sampleResorts()}
	r := resortRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resorts/3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Valparai Emerald")
}

func TestGetResortByIDNotFound(t *testing.T) {
	repo := &fakeResortRepo{resorts: sampleResorts()}
	r := resortRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resorts/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetResortByIDRejectsNonNumeric(t *testing.T) {
	r := resortRouter(&fakeResortRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resorts/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateResort(t *testing.T) {
	repo := &fakeResortRepo{}
	r := resortRouter(repo)

	w := postJSON(r, "/api/resorts", map[string]interface{}{
		"id":          6,
		"name":        "Anamalai Ridge Cottages",
		"location":    "Valparai",
		"description": "Cottages on the ridge line",
		"price":       3500,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Anamalai Ridge Cottages", repo.created[0].Name)
}

func TestCreateResortRejectsIncompletePayload(t *testing.T) {
	repo := &fakeResortRepo{}
	r := resortRouter(repo)

	w := postJSON(r, "/api/resorts", map[string]interface{}{"name": "No Location"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}
