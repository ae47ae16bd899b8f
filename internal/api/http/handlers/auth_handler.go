package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/thrift-store-api/internal/api/dto"
	"github.com/spec-kit/thrift-store-api/internal/service"
	apperrors "github.com/spec-kit/thrift-store-api/pkg/util"
)

// AuthHandler exposes the public registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, _, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		NationalID: req.NationalID,
		Address:    req.Address,
		BirthDate:  req.BirthDate,
		RoleID:     req.RoleID,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{
		Status:  true,
		Message: "user created successfully",
		Token:   token,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{
		Status:  true,
		Message: "user logged in successfully",
		Token:   token,
	})
}
