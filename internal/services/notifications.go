package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/doctors-portal/api/internal/logger"
	"github.com/doctors-portal/api/internal/models"
)

// NotificationService sends booking confirmations over SMS via Textbelt.
type NotificationService struct {
	apiKey string
}

func NewNotificationService(apiKey string) *NotificationService {
	return &NotificationService{apiKey: apiKey}
}

// SendBookingConfirmationSMS confirms a freshly created booking to the
// patient. Bookings without a phone number are skipped silently.
func (s *NotificationService) SendBookingConfirmationSMS(booking *models.Booking) {
	if booking.Phone == "" {
		logger.Get().Debug("SMS not sent: booking has no phone number",
			zap.String("patient", booking.PatientName))
		return
	}

	smsBody := fmt.Sprintf(
		"Booking confirmed: %s on %s at %s.",
		booking.Treatment,
		booking.Date,
		booking.Slot,
	)

	// Send in a goroutine so it doesn't block the API response.
	go s.sendSMS(booking.Phone, smsBody)
}

func (s *NotificationService) sendSMS(phone, message string) {
	log := logger.Get()

	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.apiKey,
	})

	resp, err := http.Post("https://textbelt.com/text", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		log.Warn("Failed to send Textbelt request", zap.String("phone", phone), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	success, _ := result["success"].(bool)
	if !success {
		errorMsg, _ := result["error"].(string)
		log.Warn("Failed to send SMS via Textbelt",
			zap.String("phone", phone), zap.String("reason", errorMsg))
		return
	}
	log.Info("Sent SMS via Textbelt", zap.String("phone", phone))
}
