package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is the insert-only audit record written when a booking is paid.
// There is no verification that Amount matches the booking's price; the
// record stores whatever the processor confirmed.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     primitive.ObjectID `bson:"bookingId" json:"bookingId"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        int                `bson:"amount" json:"amount"`
	PatientEmail  string             `bson:"patientEmail,omitempty" json:"patientEmail,omitempty"`
}
