package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserType distinguishes resident accounts from syndic (manager) accounts.
type UserType string

const (
	UserTypeResident UserType = "user"
	UserTypeSyndic   UserType = "syndic"
)

// AppUser is an administered resident or syndic account. PasswordHash belongs
// to the credential store only and never reaches the read model.
type AppUser struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	Name         string             `bson:"name,omitempty"`
	Surname      string             `bson:"surname,omitempty"`
	PhoneNumber  string             `bson:"phoneNumber,omitempty"`
	UserType     UserType           `bson:"userType"`
	PasswordHash string             `bson:"passwordHash,omitempty"`
}

// FullName joins name and surname for display.
func (u AppUser) FullName() string {
	switch {
	case u.Name == "":
		return u.Surname
	case u.Surname == "":
		return u.Name
	default:
		return u.Name + " " + u.Surname
	}
}

// AppUserUpdate carries the updatable user fields for a $set-style update.
// Nil pointers leave the stored value untouched.
type AppUserUpdate struct {
	Email       *string
	Name        *string
	Surname     *string
	PhoneNumber *string
	UserType    *UserType
}
