package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mbti-social/internal/domain"
	"mbti-social/internal/repository"
	"mbti-social/internal/service/activity"
	"mbti-social/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, userID, cardID uuid.UUID, content string) (*domain.Comment, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.CommentWithMeta, error)
}

type service struct {
	commentRepo repository.CommentRepository
	cardRepo    repository.CardRepository
	userRepo    repository.UserRepository
	activitySvc activity.Service
	notifSvc    notification.Service
}

func NewService(
	commentRepo repository.CommentRepository,
	cardRepo repository.CardRepository,
	userRepo repository.UserRepository,
	activitySvc activity.Service,
	notifSvc notification.Service,
) Service {
	return &service{
		commentRepo: commentRepo,
		cardRepo:    cardRepo,
		userRepo:    userRepo,
		activitySvc: activitySvc,
		notifSvc:    notifSvc,
	}
}

func (s *service) Create(ctx context.Context, userID, cardID uuid.UUID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyComment
	}

	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrCardNotFound
	}

	comment := &domain.Comment{
		ID:      uuid.New(),
		CardID:  cardID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, activity.RecordInput{
		ActorID:  userID,
		Kind:     domain.ActivityCommentCard,
		TargetID: &card.ID,
		Message:  fmt.Sprintf("Commented on card %q", card.DisplayTitle()),
	})

	if card.UserID != userID {
		author, _ := s.userRepo.GetByID(ctx, userID)
		s.notifSvc.Notify(ctx, domain.NotifyInput{
			RecipientID: card.UserID,
			ActorID:     userID,
			Type:        domain.NotifCommentCard,
			Message:     fmt.Sprintf("%s commented on your card %q", author.DisplayName("Someone"), card.DisplayTitle()),
			Link:        fmt.Sprintf("/card/%s", card.ID),
		})
	}

	return comment, nil
}

func (s *service) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.CommentWithMeta, error) {
	return s.commentRepo.ListByCard(ctx, cardID)
}
