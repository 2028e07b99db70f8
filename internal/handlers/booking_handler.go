package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/doctors-portal/api/internal/logger"
	"github.com/doctors-portal/api/internal/models"
)

// CreateBooking runs the candidate through the conflict resolver. Both
// outcomes are HTTP 200: {success:true, booking:created} or {success:false,
// booking:existing} when the patient already holds a booking for that
// treatment and date.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req struct {
		Treatment    string `json:"treatment" binding:"required"`
		Date         string `json:"date" binding:"required"`
		Slot         string `json:"slot" binding:"required"`
		PatientName  string `json:"patientName" binding:"required"`
		PatientEmail string `json:"patientEmail" binding:"required,email"`
		Phone        string `json:"phone"`
		Price        int    `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	candidate := models.Booking{
		Treatment:    req.Treatment,
		Date:         req.Date,
		Slot:         req.Slot,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		Phone:        req.Phone,
		Price:        req.Price,
	}

	result, err := h.Bookings.Create(c.Request.Context(), candidate)
	if err != nil {
		logger.Get().Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	if result.Success {
		h.Notifier.SendBookingConfirmationSMS(result.Booking)
	}
	c.JSON(http.StatusOK, result)
}

// GetBookings lists the bookings of the patient named in the query. The
// owner gate has already verified the email matches the caller.
func (h *Handler) GetBookings(c *gin.Context) {
	patientEmail := c.Query("patientEmail")
	bookings, err := h.Store.BookingsByPatient(c.Request.Context(), patientEmail)
	if err != nil {
		logger.Get().Error("Failed to retrieve bookings",
			zap.String("patientEmail", patientEmail), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns a single booking by id.
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := h.Store.BookingByID(c.Request.Context(), id)
	if err != nil {
		logger.Get().Error("Failed to retrieve booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		return
	}
	if booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ConfirmPayment records a completed payment: it appends a payment audit
// record and marks the booking paid with the processor's transaction id.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req struct {
		TransactionID string `json:"transactionId" binding:"required"`
		Price         int    `json:"price"`
		Patient       string `json:"patient"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	payment := models.Payment{
		BookingID:     id,
		TransactionID: req.TransactionID,
		Amount:        req.Price,
		PatientEmail:  req.Patient,
	}
	if err := h.Store.InsertPayment(ctx, &payment); err != nil {
		logger.Get().Error("Failed to record payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	if err := h.Store.MarkBookingPaid(ctx, id, req.TransactionID); err != nil {
		logger.Get().Error("Failed to update booking payment state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"paid": true, "transactionId": req.TransactionID})
}
