package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CardID    uuid.UUID `json:"cardId" db:"card_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CommentAuthor struct {
	Name  *string `json:"name" db:"name"`
	Image *string `json:"image" db:"image"`
}

type CommentWithMeta struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	Content   string        `json:"content" db:"content"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	User      CommentAuthor `json:"user" db:"user"`
	LikeCount int64         `json:"likeCount" db:"like_count"`
}

type CreateCommentInput struct {
	CardID  string `json:"cardId" validate:"required,uuid"`
	Content string `json:"content" validate:"required,max=1000"`
}

type ToggleCommentLikeInput struct {
	CommentID string `json:"commentId" validate:"required,uuid"`
}

type CommentLikeState struct {
	Liked bool `json:"liked"`
}
