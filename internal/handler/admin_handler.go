package handler

import (
	"github.com/gofiber/fiber/v2"

	"mbti-social/internal/service/outbox"
)

// AdminHandler inspects and drains the dead-letter outbox.
type AdminHandler struct {
	replayer *outbox.Replayer
}

func NewAdminHandler(replayer *outbox.Replayer) *AdminHandler {
	return &AdminHandler{replayer: replayer}
}

func (h *AdminHandler) OutboxStatus(c *fiber.Ctx) error {
	pending, err := h.replayer.Pending(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"pending": pending,
	})
}

func (h *AdminHandler) DrainOutbox(c *fiber.Ctx) error {
	replayed, err := h.replayer.Drain(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"replayed": replayed,
	})
}
