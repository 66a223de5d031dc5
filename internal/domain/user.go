package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      *string   `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Image     *string   `json:"image" db:"image"`
	Username  *string   `json:"username" db:"username"`
	Bio       *string   `json:"bio" db:"bio"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// DisplayName falls back to the given label when the user never set a name.
func (u *User) DisplayName(fallback string) string {
	if u == nil || u.Name == nil || *u.Name == "" {
		return fallback
	}
	return *u.Name
}

func (u *User) HasRole(role string) bool {
	return u != nil && u.Role == role
}

// UserSummary is the display-safe projection used by likers, comments and feeds.
type UserSummary struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     *string   `json:"name" db:"name"`
	Image    *string   `json:"image" db:"image"`
	Username *string   `json:"username,omitempty" db:"username"`
}

type UpdateProfileInput struct {
	Username string `json:"username" validate:"required"`
	Bio      string `json:"bio" validate:"max=160"`
}

type SetUsernameInput struct {
	Username string `json:"username" validate:"required"`
}

type LeaderboardEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Username  string    `json:"username" db:"username"`
	Image     *string   `json:"image" db:"image"`
	MBTIType  string    `json:"mbtiType" db:"mbti_type"`
	LikeCount int64     `json:"likeCount" db:"like_count"`
}
