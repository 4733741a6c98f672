package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/domain"
	"github.com/spec-kit/verve-admin/internal/service"
	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

// ReclamationsHandler exposes the réclamation endpoints.
type ReclamationsHandler struct {
	reclamations *service.ReclamationService
}

// NewReclamationsHandler constructs handler.
func NewReclamationsHandler(reclamations *service.ReclamationService) *ReclamationsHandler {
	return &ReclamationsHandler{reclamations: reclamations}
}

// List handles GET /api/reclamation_api.
func (h *ReclamationsHandler) List(c *fiber.Ctx) error {
	recs, err := h.reclamations.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReclamationRecords(recs))
}

// Update handles POST /api/update_reclamation.
func (h *ReclamationsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateReclamationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ReclamationID == "" {
		return apperrors.NewValidationError("reclamationId is required", nil)
	}
	id, err := dto.ParseID("reclamationId", req.ReclamationID)
	if err != nil {
		return err
	}

	treatment := domain.ReclamationTreatment{
		SyndicComment:     req.SyndicComment,
		ImageConfirmedURL: req.ImageConfirmedURL,
		Status:            domain.ReclamationStatus(req.Status),
	}
	if err := h.reclamations.UpdateTreatment(c.UserContext(), id, treatment); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// AssignSyndic handles POST /api/assign_syndic and responds with the updated
// réclamation in transport form.
func (h *ReclamationsHandler) AssignSyndic(c *fiber.Ctx) error {
	var req dto.AssignSyndicRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	id, err := dto.ParseID("reclamationId", req.ReclamationID)
	if err != nil {
		return err
	}
	syndicID, err := dto.ParseID("syndicId", req.SyndicID)
	if err != nil {
		return err
	}

	updated, err := h.reclamations.AssignSyndic(c.UserContext(), id, syndicID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReclamationRecord(*updated))
}
