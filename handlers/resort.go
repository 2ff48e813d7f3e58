package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	resortRepo "hillescape/database/repository/resort"
	"hillescape/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ResortHandler exposes the resort catalogue endpoints.
type ResortHandler struct {
	Repo   resortRepo.ResortRepository
	Logger *zap.Logger
}

func NewResortHandler(repo resortRepo.ResortRepository, logger *zap.Logger) *ResortHandler {
	return &ResortHandler{Repo: repo, Logger: logger}
}

// ListResorts handles GET /api/resorts with optional filters.
func (h *ResortHandler) ListResorts(c *gin.Context) {
	filter := resortRepo.Filter{
		Location: c.Query("location"),
		Search:   c.Query("search"),
	}
	if v := c.Query("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = min
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = max
		}
	}
	if v := c.Query("amenities"); v != "" {
		filter.Amenities = strings.Split(v, ",")
	}
	if v := c.Query("tags"); v != "" {
		filter.Tags = strings.Split(v, ",")
	}

	resorts, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		h.Logger.Error("resort listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch resorts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(resorts),
		"resorts": resorts,
	})
}

// GetResortByID handles GET /api/resorts/:id.
func (h *ResortHandler) GetResortByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid resort id"})
		return
	}

	resort, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Resort not found"})
			return
		}
		h.Logger.Error("resort lookup failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch resort"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "resort": resort})
}

// CreateResort handles POST /api/resorts (admin).
func (h *ResortHandler) CreateResort(c *gin.Context) {
	var resort models.Resort
	if err := c.ShouldBindJSON(&resort); err != nil {
		h.Logger.Warn("invalid resort payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.Repo.Create(c.Request.Context(), &resort); err != nil {
		h.Logger.Error("resort creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create resort"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Resort created successfully",
		"resort":  resort,
	})
}
