package handler

import (
	"mbti-social/internal/config"
	"mbti-social/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Card         *CardHandler
	Comment      *CommentHandler
	Follow       *FollowHandler
	Quiz         *QuizHandler
	Activity     *ActivityHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(),
		User:         NewUserHandler(services.User),
		Card:         NewCardHandler(services.Like),
		Comment:      NewCommentHandler(services.Comment, services.Like),
		Follow:       NewFollowHandler(services.Follow),
		Quiz:         NewQuizHandler(services.Quiz),
		Activity:     NewActivityHandler(services.Activity, cfg.FeedTake),
		Notification: NewNotificationHandler(services.Notification),
		Admin:        NewAdminHandler(services.Outbox),
	}
}
