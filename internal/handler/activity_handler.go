package handler

import (
	"github.com/gofiber/fiber/v2"

	"mbti-social/internal/service/activity"
)

type ActivityHandler struct {
	activityService activity.Service
	take            int
}

func NewActivityHandler(activityService activity.Service, take int) *ActivityHandler {
	if take < 1 {
		take = 20
	}
	return &ActivityHandler{
		activityService: activityService,
		take:            take,
	}
}

func (h *ActivityHandler) Feed(c *fiber.Ctx) error {
	params := getPaginationParams(c, h.take)

	feed, err := h.activityService.Feed(c.UserContext(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(feed)
}

func (h *ActivityHandler) ByUser(c *fiber.Ctx) error {
	actorID, err := queryUUID(c, "userId")
	if err != nil {
		return err
	}
	params := getPaginationParams(c, h.take)

	activities, err := h.activityService.ListByActor(c.UserContext(), actorID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(activities)
}
