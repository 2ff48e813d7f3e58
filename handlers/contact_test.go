package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	contactRepo "hillescape/database/repository/contact"
	"hillescape/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeContactRepo struct {
	created   []models.Contact
	createErr error
	contacts  []models.Contact
}

func (f *fakeContactRepo) Create(_ context.Context, c *models.Contact) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	c.ID = "11111111-2222-3333-4444-555555555555"
	c.Status = models.ContactStatusNew
	f.created = append(f.created, *c)
	return c.ID, nil
}

func (f *fakeContactRepo) List(_ context.Context) ([]models.Contact, error) {
	return f.contacts, nil
}

func contactRouter(repo contactRepo.ContactRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContactHandler(repo, zap.NewNop())
	r := gin.New()
	r.POST("/api/contact", h.SubmitContact)
	r.GET("/api/contact", h.ListContacts)
	return r
}

func TestSubmitContact(t *testing.T) {
	repo := &fakeContactRepo{}
	r := contactRouter(repo)

	w := postJSON(r, "/api/contact", map[string]string{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"subject": "Group booking",
		"message": "Do you take groups of 20?",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)

	var body struct {
		Success bool `json:"success"`
		Contact struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"contact"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Contact.ID)
	assert.Equal(t, models.ContactStatusNew, body.Contact.Status)
}

func TestSubmitContactRejectsMissingMessage(t *testing.T) {
	repo := &fakeContactRepo{}
	r := contactRouter(repo)

	w := postJSON(r, "/api/contact", map[string]string{
		"name":  "Ravi Kumar",
		"email": "ravi@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}

func TestSubmitContactRejectsBadEmail(t *testing.T) {
	r := contactRouter(&fakeContactRepo{})

	w := postJSON(r, "/api/contact", map[string]string{
		"name":    "Ravi Kumar",
		"email":   "not-an-email",
		"message": "hello",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitContactStorageFailure(t *testing.T) {
	repo := &fakeContactRepo{createErr: errors.New("write failed")}
	r := contactRouter(repo)

	w := postJSON(r, "/api/contact", map[string]string{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"message": "hello",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListContacts(t *testing.T) {
	repo := &fakeContactRepo{contacts: []models.Contact{
		{ID: "a", Name: "One", Status: models.ContactStatusNew},
		{ID: "b", Name: "Two", Status: models.ContactStatusNew},
	}}
	r := contactRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
}
