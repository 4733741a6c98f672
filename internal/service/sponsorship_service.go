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

// SponsorshipService coordinates sponsorship listing and deletion.
type SponsorshipService struct {
	sponsorships repository.SponsorshipRepository
	users        repository.AppUserRepository
	dispatcher   events.Dispatcher
}

// NewSponsorshipService constructs the service.
func NewSponsorshipService(sponsorships repository.SponsorshipRepository, users repository.AppUserRepository, dispatcher events.Dispatcher) *SponsorshipService {
	return &SponsorshipService{sponsorships: sponsorships, users: users, dispatcher: dispatcher}
}

// List returns every sponsorship with its sponsor joined in, one batched user
// read per fetch cycle.
func (s *SponsorshipService) List(ctx context.Context) ([]domain.Sponsorship, error) {
	sponsorships, err := s.sponsorships.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	byID := make(map[primitive.ObjectID]domain.AppUser, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for i := range sponsorships {
		if u, ok := byID[sponsorships[i].UserID]; ok {
			sponsorships[i].Sponsor = &domain.SponsorInfo{Name: u.Name, Surname: u.Surname}
		}
	}
	return sponsorships, nil
}

// Delete removes one sponsorship.
func (s *SponsorshipService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.sponsorships.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Parrainage non trouvé", map[string]any{"_id": id.Hex()})
		}
		return apperrors.MapError(err)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventSponsorshipDeleted, events.ResourceSponsorships,
			map[string]string{"sponsorship_id": id.Hex()}))
	}
	return nil
}
