package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking ties a patient to one slot of a treatment on a given date. Date is
// stored and compared as the client's display string (e.g. "May 21, 2022").
// Paid and TransactionID are set only by the payment-confirmation flow.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment     string             `bson:"treatment" json:"treatment"`
	Date          string             `bson:"date" json:"date"`
	Slot          string             `bson:"slot" json:"slot"`
	PatientName   string             `bson:"patientName" json:"patientName"`
	PatientEmail  string             `bson:"patientEmail" json:"patientEmail"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         int                `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool               `bson:"paid,omitempty" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
