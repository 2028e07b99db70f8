package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is upserted on first login, keyed by email. Role is "admin" only when
// explicitly granted; an absent role means an ordinary user.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user has been explicitly granted the admin role.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
