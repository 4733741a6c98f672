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

// AccessRequestService coordinates access-request listing, status updates and
// deletion. Converting a request to a user is a client-driven sequence
// (create_user then delete_access_request) with no compensating transaction.
type AccessRequestService struct {
	requests   repository.AccessRequestRepository
	dispatcher events.Dispatcher
}

// NewAccessRequestService constructs the service.
func NewAccessRequestService(requests repository.AccessRequestRepository, dispatcher events.Dispatcher) *AccessRequestService {
	return &AccessRequestService{requests: requests, dispatcher: dispatcher}
}

// List returns every access request.
func (s *AccessRequestService) List(ctx context.Context) ([]domain.AccessRequest, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

// UpdateStatus sets the request status, e.g. to rejected.
func (s *AccessRequestService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if err := s.requests.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Access request not found", map[string]any{"requestId": id.Hex()})
		}
		return apperrors.MapError(err)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventAccessRequestUpdated, events.ResourceAccessRequests,
			map[string]string{"request_id": id.Hex(), "status": status}))
	}
	return nil
}

// Delete removes one access request.
func (s *AccessRequestService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("AccessRequest non trouvé", map[string]any{"_id": id.Hex()})
		}
		return apperrors.MapError(err)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventAccessRequestDeleted, events.ResourceAccessRequests,
			map[string]string{"request_id": id.Hex()}))
	}
	return nil
}
