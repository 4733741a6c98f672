package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sponsorship is a resident-sponsored candidate waiting to become a user.
type Sponsorship struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Surname     string             `bson:"surname"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phoneNumber"`
	Comment     string             `bson:"comment,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UserID      primitive.ObjectID `bson:"userId"`

	// Sponsor is the display join against the current user set, recomputed on
	// each fetch cycle and never persisted.
	Sponsor *SponsorInfo `bson:"-" json:"sponsor,omitempty"`
}

// SponsorInfo is the denormalized sponsoring user.
type SponsorInfo struct {
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
}
