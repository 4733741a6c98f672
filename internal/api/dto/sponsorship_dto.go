package dto

import (
	"github.com/spec-kit/verve-admin/internal/domain"
)

// SponsorshipRecord is the transport form of a sponsorship, including the
// sponsor display join computed server-side.
type SponsorshipRecord struct {
	ID          string              `json:"_id"`
	Name        string              `json:"name"`
	Surname     string              `json:"surname"`
	Email       string              `json:"email"`
	PhoneNumber string              `json:"phoneNumber"`
	Comment     string              `json:"comment,omitempty"`
	CreatedAt   string              `json:"createdAt"`
	UserID      string              `json:"userId"`
	Sponsor     *domain.SponsorInfo `json:"sponsor,omitempty"`
}

// NewSponsorshipRecord converts a domain sponsorship to transport form.
func NewSponsorshipRecord(sp domain.Sponsorship) SponsorshipRecord {
	return SponsorshipRecord{
		ID:          sp.ID.Hex(),
		Name:        sp.Name,
		Surname:     sp.Surname,
		Email:       sp.Email,
		PhoneNumber: sp.PhoneNumber,
		Comment:     sp.Comment,
		CreatedAt:   formatTime(sp.CreatedAt),
		UserID:      sp.UserID.Hex(),
		Sponsor:     sp.Sponsor,
	}
}

// NewSponsorshipRecords converts a slice of domain sponsorships.
func NewSponsorshipRecords(sponsorships []domain.Sponsorship) []SponsorshipRecord {
	records := make([]SponsorshipRecord, 0, len(sponsorships))
	for _, sp := range sponsorships {
		records = append(records, NewSponsorshipRecord(sp))
	}
	return records
}

// Domain normalizes the record into its in-memory form.
func (r SponsorshipRecord) Domain() (domain.Sponsorship, error) {
	id, err := parseObjectID("_id", r.ID)
	if err != nil {
		return domain.Sponsorship{}, err
	}
	userID, err := parseObjectID("userId", r.UserID)
	if err != nil {
		return domain.Sponsorship{}, err
	}
	createdAt, err := parseTime("createdAt", r.CreatedAt)
	if err != nil {
		return domain.Sponsorship{}, err
	}

	return domain.Sponsorship{
		ID:          id,
		Name:        r.Name,
		Surname:     r.Surname,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Comment:     r.Comment,
		CreatedAt:   createdAt,
		UserID:      userID,
		Sponsor:     r.Sponsor,
	}, nil
}
