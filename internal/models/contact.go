package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a trusted person attached to a user. The user_id reference is a
// plain hex string and is never checked for existence (delivery to contacts
// happens outside this service).
type Contact struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID string             `bson:"user_id" json:"user_id"`
	Name   string             `bson:"name" json:"name" validate:"required"`
	Phone  string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email  string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
}
