package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/domain"
	"github.com/spec-kit/verve-admin/internal/service"
)

// NotificationsHandler exposes the notification endpoints.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notifications *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// List handles GET /api/notification_api.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	notifications, err := h.notifications.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewNotificationRecords(notifications))
}

// Send handles POST /api/send_notification.
func (h *NotificationsHandler) Send(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	selected, err := req.ParseSelectedUsers()
	if err != nil {
		return err
	}

	if _, err := h.notifications.Send(c.UserContext(), service.SendInput{
		Title:         req.Title,
		Content:       req.Content,
		RecipientType: domain.RecipientType(req.RecipientType),
		SelectedUsers: selected,
	}); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Notifications sent successfully"})
}

// Delete handles DELETE /api/delete_notification.
func (h *NotificationsHandler) Delete(c *fiber.Ctx) error {
	var req dto.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	id, err := req.ParseID()
	if err != nil {
		return err
	}

	if err := h.notifications.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Notification supprimée de la base de données avec succès."})
}
