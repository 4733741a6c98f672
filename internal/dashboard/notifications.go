package dashboard

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/domain"
)

// FetchNotifications loads the notification list, recipient joins included,
// and replaces the notification store.
func (d *Dashboard) FetchNotifications(ctx context.Context) error {
	d.Notifications.SetLoading(true)

	var records []dto.NotificationRecord
	if err := d.client.get(ctx, "/api/notification_api", &records); err != nil {
		d.Notifications.Fail(err)
		return err
	}

	notifications := make([]domain.AppNotification, 0, len(records))
	for _, r := range records {
		n, err := r.Domain()
		if err != nil {
			d.Notifications.Fail(err)
			return err
		}
		notifications = append(notifications, n)
	}

	d.Notifications.Replace(notifications)
	return nil
}

// SendNotification fans a notification out to the selected audience and
// refetches the notification store.
func (d *Dashboard) SendNotification(ctx context.Context, input dto.SendNotificationRequest) error {
	var resp dto.MessageResponse
	if err := d.client.send(ctx, http.MethodPost, "/api/send_notification", input, &resp); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, resp.Message)
	return d.FetchNotifications(ctx)
}

// DeleteNotification removes one notification record and refetches the store.
func (d *Dashboard) DeleteNotification(ctx context.Context, id primitive.ObjectID) error {
	var resp dto.MessageResponse
	if err := d.client.send(ctx, http.MethodDelete, "/api/delete_notification", dto.DeleteRequest{ID: id.Hex()}, &resp); err != nil {
		d.Notices.Publish(NoticeError, err.Error())
		return err
	}
	d.Notices.Publish(NoticeSuccess, resp.Message)
	return d.FetchNotifications(ctx)
}
