package follow

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

type Service interface {
	Toggle(ctx context.Context, followerID, followingID uuid.UUID) (domain.FollowState, error)
	Status(ctx context.Context, followerID, followingID uuid.UUID) (domain.FollowState, error)
}

type service struct {
	followRepo  repository.FollowRepository
	userRepo    repository.UserRepository
	activitySvc activity.Service
	notifSvc    notification.Service
}

func NewService(followRepo repository.FollowRepository, userRepo repository.UserRepository, activitySvc activity.Service, notifSvc notification.Service) Service {
	return &service{
		followRepo:  followRepo,
		userRepo:    userRepo,
		activitySvc: activitySvc,
		notifSvc:    notifSvc,
	}
}

func (s *service) Toggle(ctx context.Context, followerID, followingID uuid.UUID) (domain.FollowState, error) {
	if followerID == followingID {
		return domain.FollowState{}, domain.ErrSelfFollow
	}

	var follower, target *domain.User
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		follower, err = s.userRepo.GetByID(gctx, followerID)
		return err
	})
	g.Go(func() (err error) {
		target, err = s.userRepo.GetByID(gctx, followingID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.FollowState{}, err
	}
	if target == nil {
		return domain.FollowState{}, domain.ErrUserNotFound
	}

	followed, changed, err := s.followRepo.Toggle(ctx, followerID, followingID)
	if err != nil {
		return domain.FollowState{}, err
	}

	if changed {
		name := follower.DisplayName("Someone")
		kind, verb := domain.ActivityUnfollowUser, "unfollowed"
		if followed {
			kind, verb = domain.ActivityFollowUser, "followed"
		}

		s.activitySvc.Record(ctx, activity.RecordInput{
			ActorID:  followerID,
			Kind:     kind,
			TargetID: &target.ID,
			Message:  fmt.Sprintf("%s %s %s", name, verb, target.DisplayName("a user")),
		})

		if followed {
			s.notifSvc.Notify(ctx, domain.NotifyInput{
				RecipientID: followingID,
				ActorID:     followerID,
				Type:        domain.NotifFollowUser,
				Message:     fmt.Sprintf("%s followed you", name),
				Link:        fmt.Sprintf("/profile/%s", followerID),
			})
		}
	}

	return domain.FollowState{Followed: followed}, nil
}

func (s *service) Status(ctx context.Context, followerID, followingID uuid.UUID) (domain.FollowState, error) {
	followed, err := s.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		return domain.FollowState{}, err
	}
	return domain.FollowState{Followed: followed}, nil
}
