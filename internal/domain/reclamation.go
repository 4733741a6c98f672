package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReclamationStatus enumerates lifecycle states for réclamations. The values
// are the stored French labels.
type ReclamationStatus string

const (
	ReclamationStatusOpen       ReclamationStatus = "Ouverte"
	ReclamationStatusInProgress ReclamationStatus = "Prise en charge"
	ReclamationStatusResolved   ReclamationStatus = "Traité"
)

// Terminal reports whether the status ends the réclamation lifecycle. A
// terminal réclamation is no longer assignable from the dashboard.
func (s ReclamationStatus) Terminal() bool {
	return s == ReclamationStatusResolved
}

// Satisfaction levels reported by residents after resolution.
const (
	SatisfactionSad     = 0
	SatisfactionNeutral = 50
	SatisfactionHappy   = 100
)

// Reclamation is a resident complaint. Created outside the admin scope and
// only ever mutated (assigned, treated) here, never deleted.
type Reclamation struct {
	ID                primitive.ObjectID  `bson:"_id"`
	Problem           string              `bson:"problem,omitempty"`
	Status            ReclamationStatus   `bson:"status,omitempty"`
	Date              *time.Time          `bson:"date,omitempty"`
	UserID            *primitive.ObjectID `bson:"userId,omitempty"`
	SyndicID          *primitive.ObjectID `bson:"syndicId,omitempty"`
	Commentaire       string              `bson:"commentaire,omitempty"`
	SyndicComment     string              `bson:"syndicComment,omitempty"`
	ReactionComment   string              `bson:"reactionComment,omitempty"`
	ImageURL          string              `bson:"imageUrl,omitempty"`
	ImageConfirmedURL string              `bson:"imageConfirmedUrl,omitempty"`
	Color             string              `bson:"color,omitempty"`
	SatisfactionLevel *int                `bson:"satisfactionLevel,omitempty"`
}

// ReclamationTreatment carries the fields an admin sets when treating a
// réclamation.
type ReclamationTreatment struct {
	SyndicComment     string
	ImageConfirmedURL string
	Status            ReclamationStatus
}
