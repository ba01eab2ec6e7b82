package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSOSMessage is stored on users that register without a custom
// default_message, and is the final fallback when an alert is created
// for a user record that somehow has none.
const DefaultSOSMessage = "I need help. This is an emergency. Please check my location and contact me immediately."

// User represents a registered app user. The PIN, when set, gates alert
// cancellation.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Phone          string             `bson:"phone" json:"phone" validate:"required"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	DefaultMessage string             `bson:"default_message" json:"default_message"`
	Pin            string             `bson:"pin,omitempty" json:"pin,omitempty" validate:"omitempty,pin"`
}
