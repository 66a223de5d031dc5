package handler

import (
	"github.com/gofiber/fiber/v2"

	"mbti-social/internal/middleware"
)

// AuthHandler exposes the session resolved by the bearer middleware.
// Sign-in itself is owned by the identity provider.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) Session(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}
