package domain

import (
	"time"

	"github.com/google/uuid"
)

type Follow struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FollowerID  uuid.UUID `json:"followerId" db:"follower_id"`
	FollowingID uuid.UUID `json:"followingId" db:"following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type ToggleFollowInput struct {
	FollowingID string `json:"followingId" validate:"required,uuid"`
}

type FollowState struct {
	Followed bool `json:"followed"`
}
