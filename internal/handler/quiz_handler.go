package handler

import (
	"github.com/gofiber/fiber/v2"

	"mbti-social/internal/domain"
	"mbti-social/internal/middleware"
	"mbti-social/internal/service/quiz"
)

type QuizHandler struct {
	quizService quiz.Service
}

func NewQuizHandler(quizService quiz.Service) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.SubmitQuizInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	submission, err := h.quizService.Submit(c.UserContext(), userID, input.Answers)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(submission)
}
