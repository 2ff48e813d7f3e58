package handlers

import (
	"net/http"

	contactRepo "hillescape/database/repository/contact"
	"hillescape/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact form endpoints.
type ContactHandler struct {
	Repo   contactRepo.ContactRepository
	Logger *zap.Logger
}

func NewContactHandler(repo contactRepo.ContactRepository, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Repo: repo, Logger: logger}
}

// SubmitContact handles POST /api/contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), &contact)
	if err != nil {
		h.Logger.Error("contact submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully! We will contact you soon.",
		"contact": gin.H{
			"id":        id,
			"name":      contact.Name,
			"email":     contact.Email,
			"subject":   contact.Subject,
			"status":    contact.Status,
			"createdAt": contact.CreatedAt,
		},
	})
}

// ListContacts handles GET /api/contact (admin).
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("contact listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(contacts),
		"contacts": contacts,
	})
}
