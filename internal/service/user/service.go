package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"mbti-social/internal/domain"
	"mbti-social/internal/repository"
	"mbti-social/internal/service/activity"
)

const leaderboardTake = 50

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

// ValidateUsername enforces the public username format.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return domain.ErrInvalidUsername
	}
	return nil
}

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error)
	SetUsername(ctx context.Context, userID uuid.UUID, username string) error
	CheckUsername(ctx context.Context, username string) (bool, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type service struct {
	userRepo    repository.UserRepository
	activitySvc activity.Service
}

func NewService(userRepo repository.UserRepository, activitySvc activity.Service) Service {
	return &service{
		userRepo:    userRepo,
		activitySvc: activitySvc,
	}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	bio := strings.TrimSpace(input.Bio)

	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	taken, err := s.userRepo.UsernameTaken(ctx, username, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		s.recordRejected(ctx, userID, domain.ActivityUpdateProfileRejected, username)
		return nil, domain.ErrUsernameTaken
	}

	updated, err := s.userRepo.UpdateProfile(ctx, userID, username, bio)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			s.recordRejected(ctx, userID, domain.ActivityUpdateProfileRejected, username)
		}
		return nil, err
	}

	s.activitySvc.Record(ctx, activity.RecordInput{
		ActorID: userID,
		Kind:    domain.ActivityUpdateProfile,
		Message: fmt.Sprintf("Updated profile: username %q, bio %q", username, bio),
	})

	return updated, nil
}

func (s *service) SetUsername(ctx context.Context, userID uuid.UUID, username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return domain.ErrUsernameTooShort
	}
	if err := ValidateUsername(username); err != nil {
		return err
	}

	taken, err := s.userRepo.UsernameTaken(ctx, username, userID)
	if err != nil {
		return err
	}
	if taken {
		s.recordRejected(ctx, userID, domain.ActivitySetUsernameRejected, username)
		return domain.ErrUsernameTaken
	}

	if err := s.userRepo.SetUsername(ctx, userID, username); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			s.recordRejected(ctx, userID, domain.ActivitySetUsernameRejected, username)
		}
		return err
	}

	s.activitySvc.Record(ctx, activity.RecordInput{
		ActorID: userID,
		Kind:    domain.ActivitySetUsername,
		Message: fmt.Sprintf("Set username %q", username),
	})
	return nil
}

// CheckUsername reports whether nobody holds the username yet.
func (s *service) CheckUsername(ctx context.Context, username string) (bool, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if len(username) < 3 {
		return false, domain.ErrUsernameTooShort
	}
	taken, err := s.userRepo.UsernameTaken(ctx, username, uuid.Nil)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (s *service) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.userRepo.Leaderboard(ctx, leaderboardTake)
}

func (s *service) recordRejected(ctx context.Context, userID uuid.UUID, kind domain.ActivityKind, username string) {
	s.activitySvc.Record(ctx, activity.RecordInput{
		ActorID: userID,
		Kind:    kind,
		Message: fmt.Sprintf("Username %q is already taken", username),
	})
}
