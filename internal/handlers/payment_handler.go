package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/doctors-portal/api/internal/logger"
)

// CreatePaymentIntent asks the processor for a payment intent covering the
// service price and hands the client secret back to the frontend.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price int `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	clientSecret, err := h.Payments.CreateIntent(req.Price)
	if err != nil {
		logger.Get().Error("Failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
