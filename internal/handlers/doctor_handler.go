package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/doctors-portal/api/internal/logger"
	"github.com/doctors-portal/api/internal/models"
)

// AddDoctor stores a new doctor. Admin-gated at the route.
func (h *Handler) AddDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Store.InsertDoctor(c.Request.Context(), &doctor); err != nil {
		logger.Get().Error("Failed to add doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add doctor"})
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

// GetDoctors lists all doctors.
func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Store.Doctors(c.Request.Context())
	if err != nil {
		logger.Get().Error("Failed to retrieve doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctor removes a doctor by email. Admin-gated at the route.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	email := c.Param("email")
	deleted, err := h.Store.DeleteDoctor(c.Request.Context(), email)
	if err != nil {
		logger.Get().Error("Failed to delete doctor", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
