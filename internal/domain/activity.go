package domain

import (
	"time"

	"github.com/google/uuid"
)

type ActivityKind string

const (
	// ActivityRegister rows are written by the identity provider's sign-up
	// flow; this service only reads them back into feeds.
	ActivityRegister              ActivityKind = "REGISTER"
	ActivitySubmitQuiz            ActivityKind = "SUBMIT_QUIZ"
	ActivityQuizRejected          ActivityKind = "QUIZ_REJECTED"
	ActivityLikeCard              ActivityKind = "LIKE_CARD"
	ActivityUnlikeCard            ActivityKind = "UNLIKE_CARD"
	ActivityLikeComment           ActivityKind = "LIKE_COMMENT"
	ActivityUnlikeComment         ActivityKind = "UNLIKE_COMMENT"
	ActivityCommentCard           ActivityKind = "COMMENT_CARD"
	ActivityFollowUser            ActivityKind = "FOLLOW_USER"
	ActivityUnfollowUser          ActivityKind = "UNFOLLOW_USER"
	ActivityUpdateProfile         ActivityKind = "UPDATE_PROFILE"
	ActivityUpdateProfileRejected ActivityKind = "UPDATE_PROFILE_REJECTED"
	ActivitySetUsername           ActivityKind = "SET_USERNAME"
	ActivitySetUsernameRejected   ActivityKind = "SET_USERNAME_REJECTED"
)

type TargetType string

const (
	TargetNone       TargetType = ""
	TargetCard       TargetType = "Card"
	TargetComment    TargetType = "Comment"
	TargetUser       TargetType = "User"
	TargetQuizResult TargetType = "QuizResult"
)

var activityTargets = map[ActivityKind]TargetType{
	ActivityRegister:              TargetUser,
	ActivitySubmitQuiz:            TargetCard,
	ActivityQuizRejected:          TargetQuizResult,
	ActivityLikeCard:              TargetCard,
	ActivityUnlikeCard:            TargetCard,
	ActivityLikeComment:           TargetComment,
	ActivityUnlikeComment:         TargetComment,
	ActivityCommentCard:           TargetCard,
	ActivityFollowUser:            TargetUser,
	ActivityUnfollowUser:          TargetUser,
	ActivityUpdateProfile:         TargetNone,
	ActivityUpdateProfileRejected: TargetNone,
	ActivitySetUsername:           TargetNone,
	ActivitySetUsernameRejected:   TargetNone,
}

// Valid reports whether k is one of the known kinds.
func (k ActivityKind) Valid() bool {
	_, ok := activityTargets[k]
	return ok
}

// TargetType is fixed per kind; the target id, when present, always points at this entity.
func (k ActivityKind) TargetType() TargetType {
	return activityTargets[k]
}

type Activity struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	ActorID   uuid.UUID    `json:"actorId" db:"actor_id"`
	Kind      ActivityKind `json:"type" db:"type"`
	TargetID  *uuid.UUID   `json:"targetId,omitempty" db:"target_id"`
	Message   string       `json:"message" db:"message"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
}

type ActivityActor struct {
	Name  *string `json:"name" db:"name"`
	Image *string `json:"image" db:"image"`
}

type ActivityCard struct {
	ID    *uuid.UUID `json:"id" db:"id"`
	Title *string    `json:"title" db:"title"`
}

// ActivityView is an activity projected for the feed readers.
type ActivityView struct {
	Activity
	TargetType TargetType    `json:"targetType" db:"-"`
	User       ActivityActor `json:"user" db:"user"`
	Card       *ActivityCard `json:"card,omitempty" db:"-"`
	CardRef    ActivityCard  `json:"-" db:"card"`
}

// Resolve fills the derived fields after a row is scanned.
func (v *ActivityView) Resolve() {
	v.TargetType = v.Kind.TargetType()
	if v.TargetType == TargetCard && v.CardRef.ID != nil {
		card := v.CardRef
		v.Card = &card
	}
}
