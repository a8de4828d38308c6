package middleware

import (
	"strings"

	"questify/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthRequired for downstream handlers.
const (
	UserIDKey   = "user_id"
	UserNameKey = "user_name"
)

// AuthRequired is a Fiber middleware enforcing bearer-token auth. It
// extracts the Authorization header, verifies the token, re-resolves
// the claimed user against the store and attaches the identity to the
// request context. Verification failures all map to the same 401 body
// so the response never reveals which check rejected the token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing bearer token",
			})
		}

		user, err := authService.AuthenticateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized request",
			})
		}

		c.Locals(UserIDKey, user.ID)
		c.Locals(UserNameKey, user.UserName)
		return c.Next()
	}
}
