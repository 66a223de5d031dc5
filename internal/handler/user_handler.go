package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mbti-social/internal/domain"
	"mbti-social/internal/middleware"
	"mbti-social/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.UpdateProfileInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	updated, err := h.userService.UpdateProfile(c.UserContext(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":   true,
		"user": updated,
	})
}

func (h *UserHandler) SetUsername(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.SetUsernameInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	if err := h.userService.SetUsername(c.UserContext(), userID, input.Username); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return middleware.Conflict("Username already taken")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Username set",
	})
}

func (h *UserHandler) CheckUsername(c *fiber.Ctx) error {
	available, err := h.userService.CheckUsername(c.UserContext(), c.Query("username"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"available": available,
	})
}

func (h *UserHandler) Leaderboard(c *fiber.Ctx) error {
	entries, err := h.userService.Leaderboard(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}
