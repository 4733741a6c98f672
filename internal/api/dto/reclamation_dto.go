package dto

import (
	"github.com/spec-kit/verve-admin/internal/domain"
)

// ReclamationRecord is the transport form of a réclamation.
type ReclamationRecord struct {
	ID                string `json:"_id"`
	Problem           string `json:"problem,omitempty"`
	Status            string `json:"status,omitempty"`
	Date              string `json:"date,omitempty"`
	UserID            string `json:"userId,omitempty"`
	SyndicID          string `json:"syndicId,omitempty"`
	Commentaire       string `json:"commentaire,omitempty"`
	SyndicComment     string `json:"syndicComment,omitempty"`
	ReactionComment   string `json:"reactionComment,omitempty"`
	ImageURL          string `json:"imageUrl,omitempty"`
	ImageConfirmedURL string `json:"imageConfirmedUrl,omitempty"`
	Color             string `json:"color,omitempty"`
	SatisfactionLevel *int   `json:"satisfactionLevel,omitempty"`
}

// NewReclamationRecord converts a domain réclamation to transport form.
func NewReclamationRecord(rec domain.Reclamation) ReclamationRecord {
	return ReclamationRecord{
		ID:                rec.ID.Hex(),
		Problem:           rec.Problem,
		Status:            string(rec.Status),
		Date:              formatOptionalTime(rec.Date),
		UserID:            formatOptionalObjectID(rec.UserID),
		SyndicID:          formatOptionalObjectID(rec.SyndicID),
		Commentaire:       rec.Commentaire,
		SyndicComment:     rec.SyndicComment,
		ReactionComment:   rec.ReactionComment,
		ImageURL:          rec.ImageURL,
		ImageConfirmedURL: rec.ImageConfirmedURL,
		Color:             rec.Color,
		SatisfactionLevel: rec.SatisfactionLevel,
	}
}

// NewReclamationRecords converts a slice of domain réclamations.
func NewReclamationRecords(recs []domain.Reclamation) []ReclamationRecord {
	records := make([]ReclamationRecord, 0, len(recs))
	for _, rec := range recs {
		records = append(records, NewReclamationRecord(rec))
	}
	return records
}

// Domain normalizes the record into its in-memory form.
func (r ReclamationRecord) Domain() (domain.Reclamation, error) {
	id, err := parseObjectID("_id", r.ID)
	if err != nil {
		return domain.Reclamation{}, err
	}
	userID, err := parseOptionalObjectID("userId", r.UserID)
	if err != nil {
		return domain.Reclamation{}, err
	}
	syndicID, err := parseOptionalObjectID("syndicId", r.SyndicID)
	if err != nil {
		return domain.Reclamation{}, err
	}
	date, err := parseOptionalTime("date", r.Date)
	if err != nil {
		return domain.Reclamation{}, err
	}

	return domain.Reclamation{
		ID:                id,
		Problem:           r.Problem,
		Status:            domain.ReclamationStatus(r.Status),
		Date:              date,
		UserID:            userID,
		SyndicID:          syndicID,
		Commentaire:       r.Commentaire,
		SyndicComment:     r.SyndicComment,
		ReactionComment:   r.ReactionComment,
		ImageURL:          r.ImageURL,
		ImageConfirmedURL: r.ImageConfirmedURL,
		Color:             r.Color,
		SatisfactionLevel: r.SatisfactionLevel,
	}, nil
}

// UpdateReclamationRequest is the update_reclamation payload.
type UpdateReclamationRequest struct {
	ReclamationID     string `json:"reclamationId"`
	SyndicComment     string `json:"syndicComment"`
	ImageConfirmedURL string `json:"imageConfirmedUrl"`
	Status            string `json:"status"`
}

// AssignSyndicRequest is the assign_syndic payload.
type AssignSyndicRequest struct {
	ReclamationID string `json:"reclamationId"`
	SyndicID      string `json:"syndicId"`
}

// SuccessResponse is the `{success}` body returned by update_reclamation.
type SuccessResponse struct {
	Success bool `json:"success"`
}
