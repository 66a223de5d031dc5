package domain

import (
	"time"

	"github.com/google/uuid"
)

type Card struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       uuid.UUID  `json:"userId" db:"user_id"`
	QuizResultID *uuid.UUID `json:"quizResultId,omitempty" db:"quiz_result_id"`
	Title        *string    `json:"title" db:"title"`
	Description  *string    `json:"description" db:"description"`
	ImageURL     *string    `json:"imageUrl" db:"image_url"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// DisplayTitle returns the card title or "Untitled".
func (c *Card) DisplayTitle() string {
	if c == nil || c.Title == nil || *c.Title == "" {
		return "Untitled"
	}
	return *c.Title
}

type CardLike struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	CardID    uuid.UUID `json:"cardId" db:"card_id"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type ToggleCardLikeInput struct {
	CardID string `json:"cardId" validate:"required,uuid"`
	Source string `json:"source" validate:"omitempty,max=32"`
}

// LikeState is the result of a card like toggle or status query.
type LikeState struct {
	Liked bool  `json:"liked"`
	Total int64 `json:"total"`
}
