package dto

import (
	"github.com/spec-kit/verve-admin/internal/domain"
)

// AppUserRecord is the transport form of a user; the credential never appears.
type AppUserRecord struct {
	ID          string `json:"_id"`
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	Surname     string `json:"surname,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	UserType    string `json:"userType"`
}

// NewAppUserRecord converts a domain user to transport form.
func NewAppUserRecord(u domain.AppUser) AppUserRecord {
	return AppUserRecord{
		ID:          u.ID.Hex(),
		Email:       u.Email,
		Name:        u.Name,
		Surname:     u.Surname,
		PhoneNumber: u.PhoneNumber,
		UserType:    string(u.UserType),
	}
}

// NewAppUserRecords converts a slice of domain users.
func NewAppUserRecords(users []domain.AppUser) []AppUserRecord {
	records := make([]AppUserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, NewAppUserRecord(u))
	}
	return records
}

// Domain normalizes the record into its in-memory form, rejecting malformed
// identifiers.
func (r AppUserRecord) Domain() (domain.AppUser, error) {
	id, err := parseObjectID("_id", r.ID)
	if err != nil {
		return domain.AppUser{}, err
	}
	return domain.AppUser{
		ID:          id,
		Email:       r.Email,
		Name:        r.Name,
		Surname:     r.Surname,
		PhoneNumber: r.PhoneNumber,
		UserType:    domain.UserType(r.UserType),
	}, nil
}

// CreateUserRequest is the create_user payload.
type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phoneNumber"`
	UserType    string `json:"userType"`
}

// UpdateUserRequest is the update_user payload. Absent fields stay untouched.
type UpdateUserRequest struct {
	ID          string  `json:"_id"`
	Email       *string `json:"email,omitempty"`
	Name        *string `json:"name,omitempty"`
	Surname     *string `json:"surname,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	UserType    *string `json:"userType,omitempty"`
}

// Update converts the request into the domain update form.
func (r UpdateUserRequest) Update() domain.AppUserUpdate {
	update := domain.AppUserUpdate{
		Email:       r.Email,
		Name:        r.Name,
		Surname:     r.Surname,
		PhoneNumber: r.PhoneNumber,
	}
	if r.UserType != nil {
		t := domain.UserType(*r.UserType)
		update.UserType = &t
	}
	return update
}
