package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/verve-admin/internal/api/dto"
	"github.com/spec-kit/verve-admin/internal/domain"
	"github.com/spec-kit/verve-admin/internal/service"
	apperrors "github.com/spec-kit/verve-admin/pkg/util"
)

// UsersHandler exposes the user administration endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /api/appuser_api.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAppUserRecords(users))
}

// Create handles POST /api/create_user.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	_, err := h.users.Create(c.UserContext(), service.UserCreateInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Surname:     req.Surname,
		PhoneNumber: req.PhoneNumber,
		UserType:    domain.UserType(req.UserType),
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "User created successfully"})
}

// Update handles PUT /api/update_user.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ID == "" {
		return apperrors.NewValidationError("_id is required", nil)
	}
	id, err := dto.ParseID("_id", req.ID)
	if err != nil {
		return err
	}

	if err := h.users.Update(c.UserContext(), id, req.Update()); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Mise à jour de l'utilisateur réussie"})
}

// Delete handles DELETE /api/delete_user. Deletion is database-only; the
// identity-provider account deliberately survives.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	var req dto.DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	id, err := req.ParseID()
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{
		Message: "Utilisateur supprimé de la base de données avec succès. Remarque: le compte du fournisseur d'identité existe toujours.",
	})
}
