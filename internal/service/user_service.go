package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/verve-admin/internal/auth"
	"github.com/spec-kit/verve-admin/internal/domain"
	"github.com/spec-kit/verve-admin/internal/events"
	"github.com/spec-kit/verve-admin/internal/repository"
	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

// UserService coordinates user administration workflows.
type UserService struct {
	users      repository.AppUserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService constructs the service.
func NewUserService(users repository.AppUserRepository, dispatcher events.Dispatcher, bcryptCost int) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// UserCreateInput describes the create-user payload.
type UserCreateInput struct {
	Email       string
	Password    string
	Name        string
	Surname     string
	PhoneNumber string
	UserType    domain.UserType
}

// List returns every user in the read model (credential hash excluded).
func (s *UserService) List(ctx context.Context) ([]domain.AppUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// Create registers the credential and inserts the user document. Deleting the
// user later removes only the document; the credential survives on purpose.
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*domain.AppUser, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, apperrors.NewValidationError("email is required", nil)
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, apperrors.NewValidationError("Le mot de passe est requis", nil)
	}
	userType := input.UserType
	if userType == "" {
		userType = domain.UserTypeResident
	}
	if userType != domain.UserTypeResident && userType != domain.UserTypeSyndic {
		return nil, apperrors.NewValidationError("invalid userType", map[string]any{"userType": userType})
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("un utilisateur avec cet email existe déjà", map[string]any{"email": input.Email})
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.AppUser{
		Email:        input.Email,
		Name:         input.Name,
		Surname:      input.Surname,
		PhoneNumber:  input.PhoneNumber,
		UserType:     userType,
		PasswordHash: hash,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserCreated, user.ID.Hex())
	user.PasswordHash = ""
	return user, nil
}

// Update applies a partial update to the user document.
func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, update domain.AppUserUpdate) error {
	if err := s.users.Update(ctx, id, update); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("User not found or no changes made", map[string]any{"_id": id.Hex()})
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventUserUpdated, id.Hex())
	return nil
}

// Delete removes the user document only. The identity-provider credential is
// left in place; callers surface that caveat to the admin.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Utilisateur non trouvé", map[string]any{"_id": id.Hex()})
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventUserDeleted, id.Hex())
	return nil
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, userID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.New(eventType, events.ResourceUsers, map[string]string{"user_id": userID}))
}
