package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mbti-social/internal/domain"
	"mbti-social/internal/repository"
	"mbti-social/internal/service/email"
	"mbti-social/internal/service/outbox"
	"mbti-social/internal/service/realtime"
)

type Service interface {
	// Notify persists and pushes one notification unless the input is a
	// self-action or incomplete. Failures are logged and dead-lettered.
	Notify(ctx context.Context, input domain.NotifyInput)
	List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Notification, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (domain.MarkReadResult, error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	ReplayNotification(ctx context.Context, payload json.RawMessage) error
	ReplayPublish(ctx context.Context, payload json.RawMessage) error
}

type Options struct {
	EmailEnabled bool
	Domain       string
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	publisher realtime.Publisher
	emailSvc  email.Service
	outbox    outbox.Store
	opts      Options
	log       *logrus.Entry
}

func NewService(
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	publisher realtime.Publisher,
	emailSvc email.Service,
	store outbox.Store,
	opts Options,
	log *logrus.Entry,
) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		publisher: publisher,
		emailSvc:  emailSvc,
		outbox:    store,
		opts:      opts,
		log:       log.WithField("service", "notification"),
	}
}

func (s *service) Notify(ctx context.Context, input domain.NotifyInput) {
	if input.Skip() {
		return
	}

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  input.RecipientID,
		Type:    input.Type,
		Message: input.Message,
		Link:    input.Link,
		Read:    false,
	}

	log := s.log.WithFields(logrus.Fields{
		"actor":     input.ActorID,
		"recipient": input.RecipientID,
		"kind":      input.Type,
	})

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		log.WithError(err).Error("failed to create notification")
		s.deadLetter(ctx, outbox.KindNotification, notif, err)
		return
	}

	s.publish(ctx, notif, log)

	if s.opts.EmailEnabled && s.emailSvc != nil {
		go s.sendEmail(context.Background(), notif, log)
	}
}

func (s *service) publish(ctx context.Context, notif *domain.Notification, log *logrus.Entry) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, notif); err != nil {
		log.WithError(err).Error("failed to publish notification")
		s.deadLetter(ctx, outbox.KindPublish, notif, err)
	}
}

func (s *service) sendEmail(ctx context.Context, notif *domain.Notification, log *logrus.Entry) {
	recipient, err := s.userRepo.GetByID(ctx, notif.UserID)
	if err != nil {
		log.WithError(err).Warn("failed to load notification recipient")
		return
	}
	if recipient == nil || recipient.Email == "" {
		return
	}

	link := fmt.Sprintf("https://%s%s", s.opts.Domain, notif.Link)
	if err := s.emailSvc.SendNotificationEmail(ctx, recipient.Email, recipient.DisplayName("there"), notif.Message, link); err != nil {
		log.WithError(err).Warn("failed to send notification email")
	}
}

func (s *service) deadLetter(ctx context.Context, kind outbox.Kind, notif *domain.Notification, cause error) {
	if s.outbox == nil {
		return
	}
	entry, err := outbox.NewEntry(kind, notif, cause)
	if err == nil {
		err = s.outbox.Push(ctx, entry)
	}
	if err != nil {
		s.log.WithField("notification", notif.ID).WithError(err).Error("failed to dead-letter notification")
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Notification, error) {
	return s.notifRepo.ListByUser(ctx, userID, params)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (domain.MarkReadResult, error) {
	updated, err := s.notifRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return domain.MarkReadResult{}, err
	}
	return domain.MarkReadResult{Success: true, Updated: updated}, nil
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

// ReplayNotification re-inserts a notification whose first write failed and pushes it.
func (s *service) ReplayNotification(ctx context.Context, payload json.RawMessage) error {
	var notif domain.Notification
	if err := json.Unmarshal(payload, &notif); err != nil {
		return errors.Wrap(err, "invalid notification payload")
	}
	if err := s.notifRepo.Create(ctx, &notif); err != nil {
		return err
	}
	s.publish(ctx, &notif, s.log.WithField("notification", notif.ID))
	return nil
}

func (s *service) ReplayPublish(ctx context.Context, payload json.RawMessage) error {
	var notif domain.Notification
	if err := json.Unmarshal(payload, &notif); err != nil {
		return errors.Wrap(err, "invalid notification payload")
	}
	if s.publisher == nil {
		return nil
	}
	return s.publisher.Publish(ctx, &notif)
}
