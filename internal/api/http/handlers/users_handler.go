package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/thrift-store-api/internal/api/dto"
	"github.com/spec-kit/thrift-store-api/internal/auth"
	"github.com/spec-kit/thrift-store-api/internal/service"
	apperrors "github.com/spec-kit/thrift-store-api/pkg/util"
)

// UsersHandler exposes authenticated user endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// List handles GET /auth/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": dto.FromUsers(users)})
}

// ListWithRole handles GET /auth/listuser.
func (h *UsersHandler) ListWithRole(c *fiber.Ctx) error {
	rows, err := h.auth.ListUsersWithRole(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.UserWithRoleResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.UserWithRoleResponse{
			ID:    row.ID,
			Name:  row.Name,
			Email: row.Email,
			Role:  row.Role,
		})
	}
	return c.JSON(fiber.Map{"users": out})
}

// ListWithPersona handles GET /auth/list.
func (h *UsersHandler) ListWithPersona(c *fiber.Ctx) error {
	rows, err := h.auth.ListUsersWithPersona(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.UserWithPersonaResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.UserWithPersonaResponse{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			FullName: row.FullName,
			Role:     row.Role,
		})
	}
	return c.JSON(fiber.Map{"users": out})
}

// UpdateName handles PUT /auth/update/:id.
func (h *UsersHandler) UpdateName(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("user")
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.auth.UpdateName(c.Context(), principal.User.ID, int64(targetID), req.Name); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "user name updated successfully"})
}

// UpdatePassword handles PUT /auth/update-password/:id.
func (h *UsersHandler) UpdatePassword(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("user")
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.auth.UpdatePassword(c.Context(), principal.User.ID, int64(targetID), req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "user password updated successfully"})
}

// Delete handles DELETE /auth/delete/users/:id. Only token validity is
// required; any authenticated user may delete any account, matching the
// original contract.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("user")
	}

	if err := h.auth.DeleteUser(c.Context(), int64(targetID)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "user deleted successfully"})
}
