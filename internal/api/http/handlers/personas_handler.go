package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/thrift-store-api/internal/api/dto"
	"github.com/spec-kit/thrift-store-api/internal/service"
	apperrors "github.com/spec-kit/thrift-store-api/pkg/util"
)

// PersonasHandler exposes authenticated persona endpoints.
type PersonasHandler struct {
	auth *service.AuthService
}

// NewPersonasHandler constructs handler.
func NewPersonasHandler(authService *service.AuthService) *PersonasHandler {
	return &PersonasHandler{auth: authService}
}

// List handles GET /auth/user.
func (h *PersonasHandler) List(c *fiber.Ctx) error {
	personas, err := h.auth.ListPersonas(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"personas": dto.FromPersonas(personas)})
}

// Delete handles DELETE /auth/delete/personas/:id.
func (h *PersonasHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("persona")
	}

	if err := h.auth.DeletePersona(c.Context(), int64(id)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "persona deleted successfully"})
}
