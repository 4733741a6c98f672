package dto

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

// Transport form is strings all the way down: identifiers as 24-char hex,
// dates as RFC 3339. These helpers reject malformed values at the boundary
// instead of letting them drift into the stores.

func parseObjectID(field, value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewValidationError(
			fmt.Sprintf("invalid %s", field), map[string]any{field: value})
	}
	return id, nil
}

func parseOptionalObjectID(field, value string) (*primitive.ObjectID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := parseObjectID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(
			fmt.Sprintf("invalid %s", field), map[string]any{field: value})
	}
	return t, nil
}

func parseOptionalTime(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseTime(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalObjectID(id *primitive.ObjectID) string {
	if id == nil {
		return ""
	}
	return id.Hex()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseID validates a 24-char hex identifier from any request field.
func ParseID(field, value string) (primitive.ObjectID, error) {
	return parseObjectID(field, value)
}

// DeleteRequest is the shared body of every delete endpoint.
type DeleteRequest struct {
	ID string `json:"_id"`
}

// ParseID validates the delete target identifier.
func (r DeleteRequest) ParseID() (primitive.ObjectID, error) {
	return parseObjectID("_id", r.ID)
}

// MessageResponse is the `{message}` success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the `{error}` failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}
