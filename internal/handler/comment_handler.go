package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mbti-social/internal/domain"
	"mbti-social/internal/middleware"
	"mbti-social/internal/service/comment"
	"mbti-social/internal/service/like"
)

type CommentHandler struct {
	commentService comment.Service
	likeService    like.Service
}

func NewCommentHandler(commentService comment.Service, likeService like.Service) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		likeService:    likeService,
	}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.CreateCommentInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	created, err := h.commentService.Create(c.UserContext(), userID, uuid.MustParse(input.CardID), input.Content)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(created)
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	cardID, err := queryUUID(c, "cardId")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListByCard(c.UserContext(), cardID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

func (h *CommentHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.ToggleCommentLikeInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	state, err := h.likeService.ToggleCommentLike(c.UserContext(), userID, uuid.MustParse(input.CommentID))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(state)
}
