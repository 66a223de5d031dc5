package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mbti-social/internal/domain"
	"mbti-social/internal/service/activity"
	"mbti-social/internal/service/auth"
	"mbti-social/internal/service/ratelimit"
)

type ActivityService struct {
	mock.Mock
}

func (m *ActivityService) Record(ctx context.Context, input activity.RecordInput) {
	m.Called(ctx, input)
}

func (m *ActivityService) Feed(ctx context.Context, params domain.PaginationParams) ([]domain.ActivityView, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.ActivityView), args.Error(1)
}

func (m *ActivityService) ListByActor(ctx context.Context, actorID uuid.UUID, params domain.PaginationParams) ([]domain.ActivityView, error) {
	args := m.Called(ctx, actorID, params)
	return args.Get(0).([]domain.ActivityView), args.Error(1)
}

func (m *ActivityService) Replay(ctx context.Context, payload json.RawMessage) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) Notify(ctx context.Context, input domain.NotifyInput) {
	m.Called(ctx, input)
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (domain.MarkReadResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.MarkReadResult), args.Error(1)
}

func (m *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) ReplayNotification(ctx context.Context, payload json.RawMessage) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *NotificationService) ReplayPublish(ctx context.Context, payload json.RawMessage) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendNotificationEmail(ctx context.Context, toEmail, recipientName, message, link string) error {
	args := m.Called(ctx, toEmail, recipientName, message, link)
	return args.Error(0)
}

type AuthService struct {
	mock.Mock
}

func (m *AuthService) ValidateAccessToken(token string) (*auth.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func (m *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type LikeService struct {
	mock.Mock
}

func (m *LikeService) ToggleCardLike(ctx context.Context, userID, cardID uuid.UUID, source string) (domain.LikeState, error) {
	args := m.Called(ctx, userID, cardID, source)
	return args.Get(0).(domain.LikeState), args.Error(1)
}

func (m *LikeService) CardLikeStatus(ctx context.Context, userID, cardID uuid.UUID) (domain.LikeState, error) {
	args := m.Called(ctx, userID, cardID)
	return args.Get(0).(domain.LikeState), args.Error(1)
}

func (m *LikeService) CardLikers(ctx context.Context, cardID uuid.UUID) ([]domain.UserSummary, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

func (m *LikeService) ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (domain.CommentLikeState, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Get(0).(domain.CommentLikeState), args.Error(1)
}

type FollowService struct {
	mock.Mock
}

func (m *FollowService) Toggle(ctx context.Context, followerID, followingID uuid.UUID) (domain.FollowState, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Get(0).(domain.FollowState), args.Error(1)
}

func (m *FollowService) Status(ctx context.Context, followerID, followingID uuid.UUID) (domain.FollowState, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Get(0).(domain.FollowState), args.Error(1)
}

type CommentService struct {
	mock.Mock
}

func (m *CommentService) Create(ctx context.Context, userID, cardID uuid.UUID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, userID, cardID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentService) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.CommentWithMeta, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).([]domain.CommentWithMeta), args.Error(1)
}

type QuizService struct {
	mock.Mock
}

func (m *QuizService) Submit(ctx context.Context, userID uuid.UUID, answers domain.QuizAnswers) (*domain.QuizSubmission, error) {
	args := m.Called(ctx, userID, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSubmission), args.Error(1)
}

type UserService struct {
	mock.Mock
}

func (m *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserService) SetUsername(ctx context.Context, userID uuid.UUID, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}

func (m *UserService) CheckUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *UserService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

type Limiter struct {
	mock.Mock
}

func (m *Limiter) Allow(ctx context.Context, key string) (ratelimit.Result, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(ratelimit.Result), args.Error(1)
}
