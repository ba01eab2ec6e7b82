package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "active"
	AlertStatusCanceled AlertStatus = "canceled"
	AlertStatusResolved AlertStatus = "resolved"
)

// Location is embedded in an alert, never persisted on its own.
type Location struct {
	Lat      float64  `bson:"lat" json:"lat" validate:"gte=-90,lte=90"`
	Lng      float64  `bson:"lng" json:"lng" validate:"gte=-180,lte=180"`
	Accuracy *float64 `bson:"accuracy,omitempty" json:"accuracy,omitempty" validate:"omitempty,gte=0"`
}

// Alert is a triggered SOS. Only the status field ever mutates after
// creation; share_url is reserved for an external sharing mechanism and is
// left unset here.
type Alert struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   string             `bson:"user_id" json:"user_id"`
	Message  string             `bson:"message" json:"message"`
	Location *Location          `bson:"location,omitempty" json:"location,omitempty"`
	Status   AlertStatus        `bson:"status" json:"status"`
	ShareURL string             `bson:"share_url,omitempty" json:"share_url,omitempty"`
}
