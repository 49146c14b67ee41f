package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/types"
)

// AuthAdmin validates that the request carries a live admin session cookie.
// The gate is a single binary capability: no roles, no identity.
func AuthAdmin(sessions *services.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(services.SessionCookie)
		if token == "" {
			return types.NewAuthorizationError("Unauthorized", "catalog.authorization.admin")
		}

		if !sessions.Validate(token) {
			return types.NewAuthorizationError("Unauthorized", "catalog.authorization.admin")
		}

		return c.Next()
	}
}
