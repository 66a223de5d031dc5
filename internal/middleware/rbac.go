package middleware

import (
	"github.com/gofiber/fiber/v2"

	"mbti-social/internal/domain"
)

// RequireRole admits the current user when they hold any of roles.
// It must run after AuthRequired.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return domain.ErrUnauthorized
		}

		for _, role := range roles {
			if user.HasRole(role) {
				return c.Next()
			}
		}

		return Forbidden("Your account cannot use this endpoint")
	}
}
