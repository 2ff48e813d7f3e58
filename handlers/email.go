package handlers

import (
	"errors"
	"net/http"

	"hillescape/config"
	"hillescape/models"
	"hillescape/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailHandler exposes the notification self-test and sender account
// management endpoints.
type EmailHandler struct {
	Notification notification.NotificationService
	Tokens       notification.TokenStore
	Logger       *zap.Logger
}

func NewEmailHandler(svc notification.NotificationService, tokens notification.TokenStore, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{Notification: svc, Tokens: tokens, Logger: logger}
}

// Status handles GET /api/email/status.
func (h *EmailHandler) Status(c *gin.Context) {
	probes := h.Notification.ProbeProviders(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email services test complete",
		"results": probes,
	})
}

// SendTest handles POST /api/email/test (admin). It pushes a short message
// through the full provider chain so operators can verify delivery.
func (h *EmailHandler) SendTest(c *gin.Context) {
	var body struct {
		To string `json:"to"`
	}
	// Body is optional; default to the admin mailbox.
	_ = c.ShouldBindJSON(&body)
	if body.To == "" {
		body.To = config.AppConfig.AdminEmail
	}
	if body.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no recipient: provide \"to\" or configure ADMIN_EMAIL"})
		return
	}

	outcome := h.Notification.Dispatch(c.Request.Context(), models.EmailMessage{
		To:       body.To,
		Subject:  "HillEscape test email",
		HTMLBody: "<p>This is a test email from the HillEscape booking backend.</p>",
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "outcome": outcome})
}

// ConnectSender handles PUT /api/email/sender (admin): stores the SMTP sender
// identity the authenticated provider path uses.
func (h *EmailHandler) ConnectSender(c *gin.Context) {
	var cred notification.SenderCredential
	if err := c.ShouldBindJSON(&cred); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if cred.Email == "" || cred.Username == "" || cred.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email, username and password are required"})
		return
	}

	if err := h.Tokens.Put(c.Request.Context(), notification.DefaultSenderAccount, cred); err != nil {
		h.Logger.Error("failed to store sender credential", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to store sender credential"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sender account connected",
		"email":   cred.Email,
	})
}

// SenderStatus handles GET /api/email/sender/status.
func (h *EmailHandler) SenderStatus(c *gin.Context) {
	cred, err := h.Tokens.Get(c.Request.Context(), notification.DefaultSenderAccount)
	if err != nil {
		if errors.Is(err, notification.ErrCredentialNotFound) {
			c.JSON(http.StatusOK, gin.H{"connected": false, "email": nil})
			return
		}
		h.Logger.Error("sender credential lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to check sender account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"connected": true, "email": cred.Email})
}
