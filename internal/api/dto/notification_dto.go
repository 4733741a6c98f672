package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/verve-admin/internal/domain"
)

// NotificationRecord is the transport form of a notification, including the
// recipient display join computed server-side.
type NotificationRecord struct {
	ID        string                `json:"_id"`
	Title     string                `json:"title"`
	Content   string                `json:"content"`
	CreatedAt string                `json:"createdAt"`
	IsRead    bool                  `json:"isRead"`
	UserID    string                `json:"userId"`
	Recipient *domain.RecipientInfo `json:"recipient,omitempty"`
}

// NewNotificationRecord converts a domain notification to transport form.
func NewNotificationRecord(n domain.AppNotification) NotificationRecord {
	return NotificationRecord{
		ID:        n.ID.Hex(),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: formatTime(n.CreatedAt),
		IsRead:    n.IsRead,
		UserID:    n.UserID.Hex(),
		Recipient: n.Recipient,
	}
}

// NewNotificationRecords converts a slice of domain notifications.
func NewNotificationRecords(notifications []domain.AppNotification) []NotificationRecord {
	records := make([]NotificationRecord, 0, len(notifications))
	for _, n := range notifications {
		records = append(records, NewNotificationRecord(n))
	}
	return records
}

// Domain normalizes the record into its in-memory form.
func (r NotificationRecord) Domain() (domain.AppNotification, error) {
	id, err := parseObjectID("_id", r.ID)
	if err != nil {
		return domain.AppNotification{}, err
	}
	userID, err := parseObjectID("userId", r.UserID)
	if err != nil {
		return domain.AppNotification{}, err
	}
	createdAt, err := parseTime("createdAt", r.CreatedAt)
	if err != nil {
		return domain.AppNotification{}, err
	}

	return domain.AppNotification{
		ID:        id,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: createdAt,
		IsRead:    r.IsRead,
		UserID:    userID,
		Recipient: r.Recipient,
	}, nil
}

// SendNotificationRequest is the send_notification payload.
type SendNotificationRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	RecipientType string   `json:"recipientType"`
	SelectedUsers []string `json:"selectedUsers"`
}

// ParseSelectedUsers validates the explicit recipient id list.
func (r SendNotificationRequest) ParseSelectedUsers() ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(r.SelectedUsers))
	for _, raw := range r.SelectedUsers {
		id, err := parseObjectID("selectedUsers", raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
