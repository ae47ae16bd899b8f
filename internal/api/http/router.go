package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/thrift-store-api/internal/api/http/handlers"
	"github.com/spec-kit/thrift-store-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Personas       *handlers.PersonasHandler
	Roles          *handlers.RolesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	protected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Get("/users", cfg.Users.List)
	protected.Get("/user", cfg.Personas.List)
	protected.Get("/listuser", cfg.Users.ListWithRole)
	protected.Get("/list", cfg.Users.ListWithPersona)
	protected.Put("/update/:id", cfg.Users.UpdateName)
	protected.Put("/update-password/:id", cfg.Users.UpdatePassword)
	protected.Delete("/delete/users/:id", cfg.Users.Delete)
	protected.Delete("/delete/personas/:id", cfg.Personas.Delete)
	protected.Get("/roles", cfg.Roles.List)
	protected.Get("/roles/:id", cfg.Roles.Get)
}
