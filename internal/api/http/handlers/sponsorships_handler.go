package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/service"
)

// SponsorshipsHandler exposes the sponsorship endpoints.
type SponsorshipsHandler struct {
	sponsorships *service.SponsorshipService
}

// NewSponsorshipsHandler constructs handler.
func NewSponsorshipsHandler(sponsorships *service.SponsorshipService) *SponsorshipsHandler {
	return &SponsorshipsHandler{sponsorships: sponsorships}
}

// List handles GET /api/sponsorship_api.
func (h *SponsorshipsHandler) List(c *fiber.Ctx) error {
	sponsorships, err := h.sponsorships.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSponsorshipRecords(sponsorships))
}

// Delete handles DELETE /api/delete_sponsorship.
func (h *SponsorshipsHandler) Delete(c *fiber.Ctx) error {
	var req dto.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	id, err := req.ParseID()
	if err != nil {
		return err
	}

	if err := h.sponsorships.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Parrainage supprimé de la base de données avec succès."})
}
