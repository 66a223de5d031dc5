package service

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"mbti-social/internal/config"
	"mbti-social/internal/repository"
	"mbti-social/internal/service/activity"
	"mbti-social/internal/service/auth"
	"mbti-social/internal/service/comment"
	"mbti-social/internal/service/email"
	"mbti-social/internal/service/follow"
	"mbti-social/internal/service/like"
	"mbti-social/internal/service/notification"
	"mbti-social/internal/service/outbox"
	"mbti-social/internal/service/quiz"
	"mbti-social/internal/service/ratelimit"
	"mbti-social/internal/service/realtime"
	"mbti-social/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Like         like.Service
	Follow       follow.Service
	Comment      comment.Service
	Quiz         quiz.Service
	Activity     activity.Service
	Notification notification.Service
	Email        email.Service
	RateLimiter  ratelimit.Limiter
	Outbox       *outbox.Replayer
}

func NewServices(repos *repository.Repositories, redis *redis.Client, cfg *config.Config, log *logrus.Logger) *Services {
	entry := logrus.NewEntry(log)

	var store outbox.Store
	var publisher realtime.Publisher
	if redis != nil {
		store = outbox.NewRedisStore(redis, outbox.DefaultKey)
		publisher = realtime.NewRedisPublisher(redis)
	} else {
		store = outbox.NewMemoryStore()
	}

	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, cfg)
	activityService := activity.NewService(repos.Activity, store, entry)
	notificationService := notification.NewService(
		repos.Notification,
		repos.User,
		publisher,
		emailService,
		store,
		notification.Options{EmailEnabled: cfg.NotifyEmailEnabled, Domain: cfg.Domain},
		entry,
	)

	likeService := like.NewService(repos.Card, repos.CardLike, repos.Comment, repos.CommentLike, repos.User, activityService, notificationService)
	followService := follow.NewService(repos.Follow, repos.User, activityService, notificationService)
	commentService := comment.NewService(repos.Comment, repos.Card, repos.User, activityService, notificationService)
	quizService := quiz.NewService(repos.Quiz, activityService)
	userService := user.NewService(repos.User, activityService)

	replayer := outbox.NewReplayer(store, cfg.OutboxInterval, cfg.OutboxMaxAttempts, entry)
	replayer.Handle(outbox.KindActivity, activityService.Replay)
	replayer.Handle(outbox.KindNotification, notificationService.ReplayNotification)
	replayer.Handle(outbox.KindPublish, notificationService.ReplayPublish)

	return &Services{
		Auth:         authService,
		User:         userService,
		Like:         likeService,
		Follow:       followService,
		Comment:      commentService,
		Quiz:         quizService,
		Activity:     activityService,
		Notification: notificationService,
		Email:        emailService,
		RateLimiter:  NewRateLimiter(redis, cfg),
		Outbox:       replayer,
	}
}

// NewRateLimiter picks the shared Redis counter unless memory mode is configured or Redis is absent.
func NewRateLimiter(redis *redis.Client, cfg *config.Config) ratelimit.Limiter {
	opts := ratelimit.Options{Max: cfg.RateLimitMax, Window: cfg.RateLimitWindow}
	if redis == nil || cfg.RateLimitStore == "memory" {
		return ratelimit.NewMemoryLimiter(opts)
	}
	return ratelimit.NewRedisLimiter(redis, opts)
}
