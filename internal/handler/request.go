package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mbti-social/internal/domain"
	"mbti-social/internal/middleware"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// parseBody decodes the JSON body into input and runs its validate tags.
func parseBody(c *fiber.Ctx, input interface{}) error {
	if err := c.BodyParser(input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "uuid":
		return field + " must be a valid id"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// queryUUID reads a required id from the query string.
func queryUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return uuid.Nil, middleware.BadRequest("Missing " + key)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid " + key)
	}
	return id, nil
}

func getPaginationParams(c *fiber.Ctx, take int) domain.PaginationParams {
	params := domain.Take(take)

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", take); pageSize > 0 && pageSize <= take {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
