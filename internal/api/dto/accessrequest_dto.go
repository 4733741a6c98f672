package dto

import (
	"github.com/spec-kit/verve-admin/internal/domain"
)

// AccessRequestRecord is the transport form of an access request.
type AccessRequestRecord struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// NewAccessRequestRecord converts a domain access request to transport form.
func NewAccessRequestRecord(ar domain.AccessRequest) AccessRequestRecord {
	return AccessRequestRecord{
		ID:          ar.ID.Hex(),
		Name:        ar.Name,
		Surname:     ar.Surname,
		Email:       ar.Email,
		PhoneNumber: ar.PhoneNumber,
		Reason:      ar.Reason,
		Status:      ar.Status,
		CreatedAt:   formatTime(ar.CreatedAt),
	}
}

// NewAccessRequestRecords converts a slice of domain access requests.
func NewAccessRequestRecords(requests []domain.AccessRequest) []AccessRequestRecord {
	records := make([]AccessRequestRecord, 0, len(requests))
	for _, ar := range requests {
		records = append(records, NewAccessRequestRecord(ar))
	}
	return records
}

// Domain normalizes the record into its in-memory form.
func (r AccessRequestRecord) Domain() (domain.AccessRequest, error) {
	id, err := parseObjectID("_id", r.ID)
	if err != nil {
		return domain.AccessRequest{}, err
	}
	createdAt, err := parseTime("createdAt", r.CreatedAt)
	if err != nil {
		return domain.AccessRequest{}, err
	}

	return domain.AccessRequest{
		ID:          id,
		Name:        r.Name,
		Surname:     r.Surname,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Reason:      r.Reason,
		Status:      r.Status,
		CreatedAt:   createdAt,
	}, nil
}

// UpdateAccessRequestRequest is the update_access_request payload.
type UpdateAccessRequestRequest struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}
