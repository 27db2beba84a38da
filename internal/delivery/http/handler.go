package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ladle-app/backend/internal/domain"
	"github.com/ladle-app/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scalingService *usecase.ScalingService
}

// NewHandler creates a new HTTP handler
func NewHandler(scalingService *usecase.ScalingService) *Handler {
	return &Handler{scalingService: scalingService}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ladle-backend",
		"version": "1.0.0",
	})
}

// ParseIngredients decomposes ingredient lines into structured rows
func (h *Handler) ParseIngredients(c *gin.Context) {
	var req domain.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lines is required"})
		return
	}

	parsed, err := h.scalingService.ParseLines(c.Request.Context(), req.Lines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": parsed})
}

// ScaleIngredients scales a whole ingredient list by a multiplier
func (h *Handler) ScaleIngredients(c *gin.Context) {
	var req domain.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lines and multiplier are required"})
		return
	}

	scaled, err := h.scalingService.ScaleRecipe(c.Request.Context(), req.Lines, req.Multiplier, req.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": scaled})
}

// ConvertIngredient converts one ingredient line to a target system
func (h *Handler) ConvertIngredient(c *gin.Context) {
	var req domain.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "line and target are required"})
		return
	}

	converted, err := h.scalingService.Convert(c.Request.Context(), req.Line, req.Target)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoQuantity), errors.Is(err, domain.ErrUnsupportedConversion):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, converted)
}
