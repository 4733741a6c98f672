package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppNotification is one delivered notification record. A "send" fans out to
// one record per recipient.
type AppNotification struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
	IsRead    bool               `bson:"isRead"`
	UserID    primitive.ObjectID `bson:"userId"`

	// Recipient is the display join against the current user set, recomputed
	// on each fetch cycle and never persisted.
	Recipient *RecipientInfo `bson:"-" json:"recipient,omitempty"`
}

// RecipientInfo is the denormalized recipient of a notification.
type RecipientInfo struct {
	Name     string   `json:"name,omitempty"`
	Surname  string   `json:"surname,omitempty"`
	UserType UserType `json:"userType,omitempty"`
}

// RecipientType selects the fan-out audience of a notification send.
type RecipientType string

const (
	RecipientAll       RecipientType = "all"
	RecipientResidents RecipientType = "residents"
	RecipientSyndics   RecipientType = "syndics"
	RecipientSpecific  RecipientType = "specific"
)
