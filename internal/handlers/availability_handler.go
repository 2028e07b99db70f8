package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/doctors-portal/api/internal/logger"
	"github.com/doctors-portal/api/internal/services"
)

// defaultAvailabilityDate is the fallback when no date is supplied, inherited
// from the original portal so the endpoint stays usable without a date.
const defaultAvailabilityDate = "May 21, 2022"

// GetServices returns the treatment catalog projected down to names.
func (h *Handler) GetServices(c *gin.Context) {
	servicesList, err := h.Store.ServiceNames(c.Request.Context())
	if err != nil {
		logger.Get().Error("Failed to load service catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}
	c.JSON(http.StatusOK, servicesList)
}

// GetAvailable returns the catalog with each service's slots reduced to the
// ones still free on the requested date. The view is derived on every call
// and never written back.
func (h *Handler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = defaultAvailabilityDate
	}

	ctx := c.Request.Context()
	catalog, err := h.Store.Services(ctx)
	if err != nil {
		logger.Get().Error("Failed to load service catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve services"})
		return
	}

	bookings, err := h.Store.BookingsByDate(ctx, date)
	if err != nil {
		logger.Get().Error("Failed to load bookings", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, services.AvailableSlots(catalog, bookings))
}
