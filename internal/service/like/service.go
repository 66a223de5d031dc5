package like

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mbti-social/internal/domain"
	"mbti-social/internal/repository"
	"mbti-social/internal/service/activity"
	"mbti-social/internal/service/notification"
)

const likersTake = 5

type Service interface {
	ToggleCardLike(ctx context.Context, userID, cardID uuid.UUID, source string) (domain.LikeState, error)
	CardLikeStatus(ctx context.Context, userID, cardID uuid.UUID) (domain.LikeState, error)
	CardLikers(ctx context.Context, cardID uuid.UUID) ([]domain.UserSummary, error)
	ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (domain.CommentLikeState, error)
}

type service struct {
	cardRepo        repository.CardRepository
	cardLikeRepo    repository.CardLikeRepository
	commentRepo     repository.CommentRepository
	commentLikeRepo repository.CommentLikeRepository
	userRepo        repository.UserRepository
	activitySvc     activity.Service
	notifSvc        notification.Service
}

func NewService(
	cardRepo repository.CardRepository,
	cardLikeRepo repository.CardLikeRepository,
	commentRepo repository.CommentRepository,
	commentLikeRepo repository.CommentLikeRepository,
	userRepo repository.UserRepository,
	activitySvc activity.Service,
	notifSvc notification.Service,
) Service {
	return &service{
		cardRepo:        cardRepo,
		cardLikeRepo:    cardLikeRepo,
		commentRepo:     commentRepo,
		commentLikeRepo: commentLikeRepo,
		userRepo:        userRepo,
		activitySvc:     activitySvc,
		notifSvc:        notifSvc,
	}
}

// loadCardAndActor fetches both rows concurrently; they have no ordering dependency.
func (s *service) loadCardAndActor(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, *domain.User, error) {
	var (
		card  *domain.Card
		actor *domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		card, err = s.cardRepo.GetByID(gctx, cardID)
		return err
	})
	g.Go(func() (err error) {
		actor, err = s.userRepo.GetByID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return card, actor, nil
}

func (s *service) ToggleCardLike(ctx context.Context, userID, cardID uuid.UUID, source string) (domain.LikeState, error) {
	card, liker, err := s.loadCardAndActor(ctx, cardID, userID)
	if err != nil {
		return domain.LikeState{}, err
	}
	if card == nil {
		return domain.LikeState{}, domain.ErrCardNotFound
	}

	liked, changed, err := s.cardLikeRepo.Toggle(ctx, userID, cardID, source)
	if err != nil {
		return domain.LikeState{}, err
	}

	total, err := s.cardLikeRepo.CountByCard(ctx, cardID)
	if err != nil {
		return domain.LikeState{}, err
	}

	if changed {
		name := liker.DisplayName("Someone")
		kind, verb := domain.ActivityUnlikeCard, "unliked"
		if liked {
			kind, verb = domain.ActivityLikeCard, "liked"
		}

		s.activitySvc.Record(ctx, activity.RecordInput{
			ActorID:  userID,
			Kind:     kind,
			TargetID: &card.ID,
			Message:  fmt.Sprintf("%s %s card %q", name, verb, card.DisplayTitle()),
		})

		if liked {
			s.notifSvc.Notify(ctx, domain.NotifyInput{
				RecipientID: card.UserID,
				ActorID:     userID,
				Type:        domain.NotifLikeCard,
				Message:     fmt.Sprintf("%s liked your card %q", name, card.DisplayTitle()),
				Link:        fmt.Sprintf("/card/%s", card.ID),
			})
		}
	}

	return domain.LikeState{Liked: liked, Total: total}, nil
}

// CardLikeStatus reports the like total; liked is only computed for a signed-in user.
func (s *service) CardLikeStatus(ctx context.Context, userID, cardID uuid.UUID) (domain.LikeState, error) {
	total, err := s.cardLikeRepo.CountByCard(ctx, cardID)
	if err != nil {
		return domain.LikeState{}, err
	}

	state := domain.LikeState{Total: total}
	if userID == uuid.Nil {
		return state, nil
	}

	state.Liked, err = s.cardLikeRepo.Exists(ctx, userID, cardID)
	if err != nil {
		return domain.LikeState{}, err
	}
	return state, nil
}

func (s *service) CardLikers(ctx context.Context, cardID uuid.UUID) ([]domain.UserSummary, error) {
	return s.cardLikeRepo.ListLikers(ctx, cardID, likersTake)
}

func (s *service) ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (domain.CommentLikeState, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return domain.CommentLikeState{}, err
	}
	if comment == nil {
		return domain.CommentLikeState{}, domain.ErrCommentNotFound
	}

	liked, changed, err := s.commentLikeRepo.Toggle(ctx, userID, commentID)
	if err != nil {
		return domain.CommentLikeState{}, err
	}

	if changed {
		kind, verb := domain.ActivityUnlikeComment, "Unliked"
		if liked {
			kind, verb = domain.ActivityLikeComment, "Liked"
		}
		s.activitySvc.Record(ctx, activity.RecordInput{
			ActorID:  userID,
			Kind:     kind,
			TargetID: &comment.ID,
			Message:  fmt.Sprintf("%s a comment", verb),
		})

		if liked && comment.UserID != userID {
			// A failed lookup only degrades the message to "Someone".
			liker, _ := s.userRepo.GetByID(ctx, userID)
			s.notifSvc.Notify(ctx, domain.NotifyInput{
				RecipientID: comment.UserID,
				ActorID:     userID,
				Type:        domain.NotifLikeComment,
				Message:     fmt.Sprintf("%s liked your comment", liker.DisplayName("Someone")),
				Link:        fmt.Sprintf("/card/%s", comment.CardID),
			})
		}
	}

	return domain.CommentLikeState{Liked: liked}, nil
}
