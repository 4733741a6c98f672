package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Access request statuses. Stored as free-form strings in the collection;
// these are the two values the dashboard writes.
const (
	AccessRequestStatusPending  = "pending"
	AccessRequestStatusRejected = "rejected"
)

// AccessRequest is a self-service request for an account, created outside the
// admin scope. Admins convert it to a user (then delete it), reject it, or
// delete it outright.
type AccessRequest struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Surname     string             `bson:"surname"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phoneNumber"`
	Reason      string             `bson:"reason"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
}
