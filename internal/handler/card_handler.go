package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mbti-social/internal/domain"
	"mbti-social/internal/middleware"
	"mbti-social/internal/service/like"
)

type CardHandler struct {
	likeService like.Service
}

func NewCardHandler(likeService like.Service) *CardHandler {
	return &CardHandler{likeService: likeService}
}

func (h *CardHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.ToggleCardLikeInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	state, err := h.likeService.ToggleCardLike(c.UserContext(), userID, uuid.MustParse(input.CardID), input.Source)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// LikeStatus works for anonymous callers; liked is then always false.
func (h *CardHandler) LikeStatus(c *fiber.Ctx) error {
	cardID, err := queryUUID(c, "cardId")
	if err != nil {
		return err
	}

	state, err := h.likeService.CardLikeStatus(c.UserContext(), middleware.GetCurrentUserID(c), cardID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

func (h *CardHandler) Likers(c *fiber.Ctx) error {
	cardID, err := queryUUID(c, "cardId")
	if err != nil {
		return err
	}

	likers, err := h.likeService.CardLikers(c.UserContext(), cardID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(likers)
}
