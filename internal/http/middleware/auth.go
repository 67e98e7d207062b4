package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/auth"
)

// UserIDLocalKey is the key under which the authenticated user id is stored in Fiber's context locals.
const UserIDLocalKey = "user_id"

// TokenValidator checks a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer <token>" header
// and stores the caller's user id for downstream handlers.
func RequireAuth(v TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := v.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(UserIDLocalKey, claims.UserID())
		return c.Next()
	}
}

// UserID returns the id stored by RequireAuth, or "" for anonymous requests.
func UserID(c *fiber.Ctx) string {
	if s, ok := c.Locals(UserIDLocalKey).(string); ok {
		return s
	}
	return ""
}
