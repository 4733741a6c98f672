package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/verve-admin/internal/domain"
	"github.com/spec-kit/verve-admin/internal/events"
	"github.com/spec-kit/verve-admin/internal/repository"
	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

// NotificationService coordinates notification listing, fan-out and deletion.
type NotificationService struct {
	notifications repository.NotificationRepository
	users         repository.AppUserRepository
	dispatcher    events.Dispatcher
}

// NewNotificationService constructs the service.
func NewNotificationService(notifications repository.NotificationRepository, users repository.AppUserRepository, dispatcher events.Dispatcher) *NotificationService {
	return &NotificationService{notifications: notifications, users: users, dispatcher: dispatcher}
}

// SendInput describes a notification send.
type SendInput struct {
	Title         string
	Content       string
	RecipientType domain.RecipientType
	SelectedUsers []primitive.ObjectID
}

// List returns every notification with its recipient joined in. The join is a
// single batched user read plus a map lookup, done once per fetch cycle.
func (s *NotificationService) List(ctx context.Context) ([]domain.AppNotification, error) {
	notifications, err := s.notifications.List(ctx)
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

	for i := range notifications {
		if u, ok := byID[notifications[i].UserID]; ok {
			notifications[i].Recipient = &domain.RecipientInfo{
				Name:     u.Name,
				Surname:  u.Surname,
				UserType: u.UserType,
			}
		}
	}
	return notifications, nil
}

// Send resolves the recipient selector into concrete user ids and fans out one
// notification per recipient in a single batched write. An empty resolved set
// rejects the whole operation before any write happens.
func (s *NotificationService) Send(ctx context.Context, input SendInput) (int, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return 0, apperrors.NewValidationError("title and content are required", nil)
	}

	userIDs, err := s.resolveRecipients(ctx, input)
	if err != nil {
		return 0, err
	}
	if len(userIDs) == 0 {
		return 0, apperrors.NewValidationError("No recipients found for the selected type", nil)
	}

	now := time.Now().UTC()
	batch := make([]domain.AppNotification, 0, len(userIDs))
	for _, userID := range userIDs {
		batch = append(batch, domain.AppNotification{
			ID:        primitive.NewObjectID(),
			Title:     input.Title,
			Content:   input.Content,
			CreatedAt: now,
			IsRead:    false,
			UserID:    userID,
		})
	}

	if err := s.notifications.InsertMany(ctx, batch); err != nil {
		return 0, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventNotificationsSent, events.ResourceNotifications,
			events.NotificationsSentPayload{RecipientType: string(input.RecipientType), Count: len(batch)}))
	}
	return len(batch), nil
}

// Delete removes one notification.
func (s *NotificationService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.notifications.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Notification non trouvée", map[string]any{"_id": id.Hex()})
		}
		return apperrors.MapError(err)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventNotificationDeleted, events.ResourceNotifications,
			map[string]string{"notification_id": id.Hex()}))
	}
	return nil
}

func (s *NotificationService) resolveRecipients(ctx context.Context, input SendInput) ([]primitive.ObjectID, error) {
	var (
		users []domain.AppUser
		err   error
	)
	switch input.RecipientType {
	case domain.RecipientAll:
		users, err = s.users.List(ctx)
	case domain.RecipientResidents:
		users, err = s.users.ListByUserType(ctx, domain.UserTypeResident)
	case domain.RecipientSyndics:
		users, err = s.users.ListByUserType(ctx, domain.UserTypeSyndic)
	case domain.RecipientSpecific:
		return input.SelectedUsers, nil
	default:
		return nil, apperrors.NewValidationError("Invalid recipient type", map[string]any{"recipientType": input.RecipientType})
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	ids := make([]primitive.ObjectID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}
