package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/verve-admin/internal/domain"
	"github.com/spec-kit/verve-admin/internal/events"
	"github.com/spec-kit/verve-admin/internal/repository"
	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

// ReclamationService coordinates réclamation treatment and assignment.
type ReclamationService struct {
	reclamations repository.ReclamationRepository
	dispatcher   events.Dispatcher
}

// NewReclamationService constructs the service.
func NewReclamationService(reclamations repository.ReclamationRepository, dispatcher events.Dispatcher) *ReclamationService {
	return &ReclamationService{reclamations: reclamations, dispatcher: dispatcher}
}

// List returns every réclamation.
func (s *ReclamationService) List(ctx context.Context) ([]domain.Reclamation, error) {
	recs, err := s.reclamations.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return recs, nil
}

// UpdateTreatment sets the syndic comment, confirmation image and status.
func (s *ReclamationService) UpdateTreatment(ctx context.Context, id primitive.ObjectID, treatment domain.ReclamationTreatment) error {
	if err := s.reclamations.UpdateTreatment(ctx, id, treatment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Réclamation non trouvée", map[string]any{"reclamationId": id.Hex()})
		}
		return apperrors.MapError(err)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventReclamationUpdated, events.ResourceReclamations,
			map[string]string{"reclamation_id": id.Hex()}))
	}
	return nil
}

// AssignSyndic sets the syndic reference and returns the updated réclamation.
// The terminal-status guard lives in the dashboard client, not here; the
// server stays permissive on purpose.
func (s *ReclamationService) AssignSyndic(ctx context.Context, id, syndicID primitive.ObjectID) (*domain.Reclamation, error) {
	if err := s.reclamations.AssignSyndic(ctx, id, syndicID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Réclamation non trouvée", map[string]any{"reclamationId": id.Hex()})
		}
		return nil, apperrors.MapError(err)
	}

	updated, err := s.reclamations.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventSyndicAssigned, events.ResourceReclamations,
			events.SyndicAssignedPayload{ReclamationID: id.Hex(), SyndicID: syndicID.Hex()}))
	}
	return updated, nil
}
