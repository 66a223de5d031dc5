package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mbti-social/internal/domain"
)

const rateLimitedMessage = "Too many requests. Please try again later."

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewErrorHandler maps domain and fiber errors onto the JSON error body.
// Unexpected errors are logged with their trace id and hidden from the client.
func NewErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, errorCode, message := classify(err)
		traceID := uuid.New().String()[:8]

		if code >= fiber.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"trace_id": traceID,
				"method":   c.Method(),
				"path":     c.Path(),
			}).WithError(err).Error("request failed")
		}

		return c.Status(code).JSON(ErrorResponse{
			Code:    errorCode,
			Message: message,
			TraceID: traceID,
		})
	}
}

func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return fiber.StatusTooManyRequests, "RATE_LIMITED", rateLimitedMessage
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized"
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrCommentNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", capitalize(err.Error())
	case errors.Is(err, domain.ErrUsernameTaken):
		return fiber.StatusConflict, "CONFLICT", "Username is already taken."
	case errors.Is(err, domain.ErrQuizCompleted):
		return fiber.StatusConflict, "CONFLICT", "You have already completed the quiz. Retakes are not allowed."
	case errors.Is(err, domain.ErrSelfFollow),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrUsernameTooShort),
		errors.Is(err, domain.ErrEmptyComment):
		return fiber.StatusBadRequest, "BAD_REQUEST", capitalize(err.Error())
	}

	var e *fiber.Error
	if errors.As(err, &e) {
		errorCode := "INTERNAL_ERROR"
		switch e.Code {
		case fiber.StatusBadRequest:
			errorCode = "BAD_REQUEST"
		case fiber.StatusUnauthorized:
			errorCode = "UNAUTHORIZED"
		case fiber.StatusForbidden:
			errorCode = "FORBIDDEN"
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			errorCode = "METHOD_NOT_ALLOWED"
		case fiber.StatusConflict:
			errorCode = "CONFLICT"
		case fiber.StatusUnprocessableEntity:
			errorCode = "VALIDATION_ERROR"
		case fiber.StatusTooManyRequests:
			errorCode = "RATE_LIMITED"
		case fiber.StatusUpgradeRequired:
			errorCode = "UPGRADE_REQUIRED"
		}
		return e.Code, errorCode, e.Message
	}

	return fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}
