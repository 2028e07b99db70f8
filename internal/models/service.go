package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable treatment from the clinic catalog. Name is the join
// key bookings refer to; Slots keeps the declared order of the day's labels.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price int                `bson:"price,omitempty" json:"price,omitempty"`
}
