package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mbti-social/internal/domain"
	"mbti-social/internal/repository"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username, bio string) (*domain.User, error) {
	args := m.Called(ctx, id, username, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) SetUsername(ctx context.Context, id uuid.UUID, username string) error {
	args := m.Called(ctx, id, username)
	return args.Error(0)
}

func (m *UserRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

type CardRepository struct {
	mock.Mock
}

func (m *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

type CardLikeRepository struct {
	mock.Mock
}

func (m *CardLikeRepository) Toggle(ctx context.Context, userID, cardID uuid.UUID, source string) (bool, bool, error) {
	args := m.Called(ctx, userID, cardID, source)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *CardLikeRepository) Exists(ctx context.Context, userID, cardID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, cardID)
	return args.Bool(0), args.Error(1)
}

func (m *CardLikeRepository) CountByCard(ctx context.Context, cardID uuid.UUID) (int64, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CardLikeRepository) ListLikers(ctx context.Context, cardID uuid.UUID, limit int) ([]domain.UserSummary, error) {
	args := m.Called(ctx, cardID, limit)
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.CommentWithMeta, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).([]domain.CommentWithMeta), args.Error(1)
}

type CommentLikeRepository struct {
	mock.Mock
}

func (m *CommentLikeRepository) Toggle(ctx context.Context, userID, commentID uuid.UUID) (bool, bool, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

type FollowRepository struct {
	mock.Mock
}

func (m *FollowRepository) Toggle(ctx context.Context, followerID, followingID uuid.UUID) (bool, bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *FollowRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

type QuizRepository struct {
	mock.Mock
}

func (m *QuizRepository) ExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *QuizRepository) CreateWithCard(ctx context.Context, result *domain.QuizResult, card *domain.Card) error {
	args := m.Called(ctx, result, card)
	return args.Error(0)
}

type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, filter repository.ActivityFilter, params domain.PaginationParams) ([]domain.ActivityView, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]domain.ActivityView), args.Error(1)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
