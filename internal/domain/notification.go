package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"userId" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Message   string           `json:"message" db:"message"`
	Link      string           `json:"link" db:"link"`
	Read      bool             `json:"read" db:"read"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}

type NotificationType string

const (
	NotifLikeCard    NotificationType = "LIKE_CARD"
	NotifLikeComment NotificationType = "LIKE_COMMENT"
	NotifCommentCard NotificationType = "COMMENT_CARD"
	NotifFollowUser  NotificationType = "FOLLOW_USER"
)

// NotifyInput describes one notification produced by an action.
type NotifyInput struct {
	RecipientID uuid.UUID
	ActorID     uuid.UUID
	Type        NotificationType
	Message     string
	Link        string
}

// Skip reports whether no notification should be created for the input.
func (in NotifyInput) Skip() bool {
	return in.RecipientID == uuid.Nil || in.RecipientID == in.ActorID || in.Message == "" || in.Link == ""
}

const (
	RealtimeEventNewNotification = "new-notification"
	realtimeChannelPrefix        = "private-user-"
)

// UserChannel is the private realtime channel of a user.
func UserChannel(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", realtimeChannelPrefix, userID)
}

// ParseUserChannel extracts the owner of a private user channel.
func ParseUserChannel(channel string) (uuid.UUID, bool) {
	if len(channel) <= len(realtimeChannelPrefix) || channel[:len(realtimeChannelPrefix)] != realtimeChannelPrefix {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(channel[len(realtimeChannelPrefix):])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// RealtimeEnvelope is the payload pushed over a user channel.
type RealtimeEnvelope struct {
	Event   string       `json:"event"`
	Channel string       `json:"channel"`
	Data    Notification `json:"data"`
}

type MarkReadResult struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}
