package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/service"
	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

// AccessRequestsHandler exposes the access-request endpoints.
type AccessRequestsHandler struct {
	requests *service.AccessRequestService
}

// NewAccessRequestsHandler constructs handler.
func NewAccessRequestsHandler(requests *service.AccessRequestService) *AccessRequestsHandler {
	return &AccessRequestsHandler{requests: requests}
}

// List handles GET /api/access_request_api.
func (h *AccessRequestsHandler) List(c *fiber.Ctx) error {
	requests, err := h.requests.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAccessRequestRecords(requests))
}

// Update handles PUT /api/update_access_request.
func (h *AccessRequestsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAccessRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status is required", nil)
	}
	id, err := dto.ParseID("requestId", req.RequestID)
	if err != nil {
		return err
	}

	if err := h.requests.UpdateStatus(c.UserContext(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Access request updated successfully"})
}

// Delete handles DELETE /api/delete_access_request.
func (h *AccessRequestsHandler) Delete(c *fiber.Ctx) error {
	var req dto.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	id, err := req.ParseID()
	if err != nil {
		return err
	}

	if err := h.requests.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "AccessRequest supprimé de la base de données avec succès."})
}
