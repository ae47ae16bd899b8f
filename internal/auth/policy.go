package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/thrift-store-api/pkg/util"
)

// CanModify reports whether the caller may mutate the record owned by
// ownerID. Self-service only: the caller must be the owner.
func CanModify(callerID, ownerID int64) bool {
	return callerID != 0 && callerID == ownerID
}

// RequireAuthenticated ensures a principal was loaded by the auth middleware.
// Authorization checks (ownership) are a separate stage on top of this.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
