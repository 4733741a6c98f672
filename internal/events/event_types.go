package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated          EventType = "user_created"
	EventUserUpdated          EventType = "user_updated"
	EventUserDeleted          EventType = "user_deleted"
	EventReclamationUpdated   EventType = "reclamation_updated"
	EventSyndicAssigned       EventType = "syndic_assigned"
	EventNotificationsSent    EventType = "notifications_sent"
	EventNotificationDeleted  EventType = "notification_deleted"
	EventSponsorshipDeleted   EventType = "sponsorship_deleted"
	EventAccessRequestUpdated EventType = "access_request_updated"
	EventAccessRequestDeleted EventType = "access_request_deleted"
)

// Resource names as used in invalidation notices.
const (
	ResourceUsers          = "appusers"
	ResourceReclamations   = "reclamations"
	ResourceNotifications  = "notifications"
	ResourceSponsorships   = "sponsorships"
	ResourceAccessRequests = "access_requests"
)

// AllTypes lists every event type; the invalidation broadcaster subscribes to
// all of them.
func AllTypes() []EventType {
	return []EventType{
		EventUserCreated,
		EventUserUpdated,
		EventUserDeleted,
		EventReclamationUpdated,
		EventSyndicAssigned,
		EventNotificationsSent,
		EventNotificationDeleted,
		EventSponsorshipDeleted,
		EventAccessRequestUpdated,
		EventAccessRequestDeleted,
	}
}

// Event represents a domain event emitted by services after a confirmed write.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Resource  string      `json:"resource"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New builds an event with a fresh id and timestamp.
func New(eventType EventType, resource string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Resource:  resource,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// NotificationsSentPayload payload.
type NotificationsSentPayload struct {
	RecipientType string `json:"recipient_type"`
	Count         int    `json:"count"`
}

// SyndicAssignedPayload payload.
type SyndicAssignedPayload struct {
	ReclamationID string `json:"reclamation_id"`
	SyndicID      string `json:"syndic_id"`
}
