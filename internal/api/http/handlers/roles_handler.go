package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/thrift-store-api/internal/service"
	apperrors "github.com/spec-kit/thrift-store-api/pkg/util"
)

// RolesHandler exposes the static role reference data.
type RolesHandler struct {
	roles *service.RoleService
}

// NewRolesHandler constructs handler.
func NewRolesHandler(roleService *service.RoleService) *RolesHandler {
	return &RolesHandler{roles: roleService}
}

// List handles GET /auth/roles.
func (h *RolesHandler) List(c *fiber.Ctx) error {
	roles, err := h.roles.List(c.Context())
	if err != nil {
		return err
	}
	out := make([]fiber.Map, 0, len(roles))
	for _, role := range roles {
		out = append(out, fiber.Map{"id": role.ID, "name": role.Name})
	}
	return c.JSON(fiber.Map{"roles": out})
}

// Get handles GET /auth/roles/:id. Lookups go through the Redis-backed cache.
func (h *RolesHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewNotFound("role")
	}

	name, err := h.roles.NameByID(c.Context(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": id, "name": name})
}
