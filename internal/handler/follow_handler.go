package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mbti-social/internal/domain"
	"mbti-social/internal/middleware"
	"mbti-social/internal/service/follow"
)

type FollowHandler struct {
	followService follow.Service
}

func NewFollowHandler(followService follow.Service) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Toggle(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.ToggleFollowInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	state, err := h.followService.Toggle(c.UserContext(), userID, uuid.MustParse(input.FollowingID))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

func (h *FollowHandler) Status(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	targetID, err := queryUUID(c, "userId")
	if err != nil {
		return err
	}

	state, err := h.followService.Status(c.UserContext(), userID, targetID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(state)
}
