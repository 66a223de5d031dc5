package like_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mbti-social/internal/domain"
	"mbti-social/internal/mocks"
	"mbti-social/internal/service/activity"
	"mbti-social/internal/service/like"
	"mbti-social/internal/service/notification"
	"mbti-social/internal/service/outbox"
)

type fixture struct {
	cards        *mocks.CardRepository
	cardLikes    *mocks.CardLikeRepository
	comments     *mocks.CommentRepository
	commentLikes *mocks.CommentLikeRepository
	users        *mocks.UserRepository
	activities   *mocks.ActivityRepository
	notifs       *mocks.NotificationRepository
	publisher    *mocks.Publisher
	svc          like.Service
}

// newFixture wires the real recorder and notifier over mocked storage.
func newFixture() *fixture {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	entry := logrus.NewEntry(log)

	f := &fixture{
		cards:        new(mocks.CardRepository),
		cardLikes:    new(mocks.CardLikeRepository),
		comments:     new(mocks.CommentRepository),
		commentLikes: new(mocks.CommentLikeRepository),
		users:        new(mocks.UserRepository),
		activities:   new(mocks.ActivityRepository),
		notifs:       new(mocks.NotificationRepository),
		publisher:    new(mocks.Publisher),
	}
	store := outbox.NewMemoryStore()
	activitySvc := activity.NewService(f.activities, store, entry)
	notifSvc := notification.NewService(f.notifs, f.users, f.publisher, nil, store, notification.Options{}, entry)
	f.svc = like.NewService(f.cards, f.cardLikes, f.comments, f.commentLikes, f.users, activitySvc, notifSvc)
	return f
}

func strPtr(s string) *string { return &s }

func TestLikeService_ToggleCardLike(t *testing.T) {
	ctx := context.Background()
	liker := &domain.User{ID: uuid.New(), Name: strPtr("Ada")}
	owner := uuid.New()
	card := &domain.Card{ID: uuid.New(), UserID: owner, Title: strPtr("Mine")}

	t.Run("Like notifies the owner", func(t *testing.T) {
		f := newFixture()
		f.cards.On("GetByID", mock.Anything, card.ID).Return(card, nil).Once()
		f.users.On("GetByID", mock.Anything, liker.ID).Return(liker, nil).Once()
		f.cardLikes.On("Toggle", ctx, liker.ID, card.ID, "feed").Return(true, true, nil).Once()
		f.cardLikes.On("CountByCard", ctx, card.ID).Return(int64(1), nil).Once()
		f.activities.On("Create", ctx, mock.MatchedBy(func(a *domain.Activity) bool {
			return a.ActorID == liker.ID && a.Kind == domain.ActivityLikeCard && *a.TargetID == card.ID
		})).Return(nil).Once()
		f.notifs.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == owner && n.Type == domain.NotifLikeCard && !n.Read &&
				n.Message == `Ada liked your card "Mine"` && n.Link == "/card/"+card.ID.String()
		})).Return(nil).Once()
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

		state, err := f.svc.ToggleCardLike(ctx, liker.ID, card.ID, "feed")

		require.NoError(t, err)
		assert.Equal(t, domain.LikeState{Liked: true, Total: 1}, state)
		f.activities.AssertExpectations(t)
		f.notifs.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("Unlike records activity without notifying", func(t *testing.T) {
		f := newFixture()
		f.cards.On("GetByID", mock.Anything, card.ID).Return(card, nil).Once()
		f.users.On("GetByID", mock.Anything, liker.ID).Return(liker, nil).Once()
		f.cardLikes.On("Toggle", ctx, liker.ID, card.ID, "").Return(false, true, nil).Once()
		f.cardLikes.On("CountByCard", ctx, card.ID).Return(int64(0), nil).Once()
		f.activities.On("Create", ctx, mock.MatchedBy(func(a *domain.Activity) bool {
			return a.Kind == domain.ActivityUnlikeCard
		})).Return(nil).Once()

		state, err := f.svc.ToggleCardLike(ctx, liker.ID, card.ID, "")

		require.NoError(t, err)
		assert.Equal(t, domain.LikeState{Liked: false, Total: 0}, state)
		f.activities.AssertExpectations(t)
		f.notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Liking your own card creates no notification", func(t *testing.T) {
		f := newFixture()
		own := &domain.Card{ID: uuid.New(), UserID: liker.ID}
		f.cards.On("GetByID", mock.Anything, own.ID).Return(own, nil).Once()
		f.users.On("GetByID", mock.Anything, liker.ID).Return(liker, nil).Once()
		f.cardLikes.On("Toggle", ctx, liker.ID, own.ID, "").Return(true, true, nil).Once()
		f.cardLikes.On("CountByCard", ctx, own.ID).Return(int64(1), nil).Once()
		f.activities.On("Create", ctx, mock.Anything).Return(nil).Once()

		state, err := f.svc.ToggleCardLike(ctx, liker.ID, own.ID, "")

		require.NoError(t, err)
		assert.True(t, state.Liked)
		f.notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent duplicate is a silent no-op", func(t *testing.T) {
		f := newFixture()
		f.cards.On("GetByID", mock.Anything, card.ID).Return(card, nil).Once()
		f.users.On("GetByID", mock.Anything, liker.ID).Return(liker, nil).Once()
		f.cardLikes.On("Toggle", ctx, liker.ID, card.ID, "").Return(true, false, nil).Once()
		f.cardLikes.On("CountByCard", ctx, card.ID).Return(int64(1), nil).Once()

		state, err := f.svc.ToggleCardLike(ctx, liker.ID, card.ID, "")

		require.NoError(t, err)
		assert.Equal(t, domain.LikeState{Liked: true, Total: 1}, state)
		f.activities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing card is rejected before any write", func(t *testing.T) {
		f := newFixture()
		missing := uuid.New()
		f.cards.On("GetByID", mock.Anything, missing).Return(nil, nil).Once()
		f.users.On("GetByID", mock.Anything, liker.ID).Return(liker, nil).Once()

		_, err := f.svc.ToggleCardLike(ctx, liker.ID, missing, "")

		assert.ErrorIs(t, err, domain.ErrCardNotFound)
		f.cardLikes.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Activity failure does not fail the like", func(t *testing.T) {
		f := newFixture()
		f.cards.On("GetByID", mock.Anything, card.ID).Return(card, nil).Once()
		f.users.On("GetByID", mock.Anything, liker.ID).Return(liker, nil).Once()
		f.cardLikes.On("Toggle", ctx, liker.ID, card.ID, "").Return(true, true, nil).Once()
		f.cardLikes.On("CountByCard", ctx, card.ID).Return(int64(3), nil).Once()
		f.activities.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()
		f.notifs.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

		state, err := f.svc.ToggleCardLike(ctx, liker.ID, card.ID, "")

		require.NoError(t, err)
		assert.Equal(t, domain.LikeState{Liked: true, Total: 3}, state)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestLikeService_CardLikeStatus(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()
	userID := uuid.New()

	f := newFixture()
	f.cardLikes.On("CountByCard", ctx, cardID).Return(int64(4), nil).Twice()
	f.cardLikes.On("Exists", ctx, userID, cardID).Return(true, nil).Once()

	state, err := f.svc.CardLikeStatus(ctx, userID, cardID)
	require.NoError(t, err)
	assert.Equal(t, domain.LikeState{Liked: true, Total: 4}, state)

	anon, err := f.svc.CardLikeStatus(ctx, uuid.Nil, cardID)
	require.NoError(t, err)
	assert.Equal(t, domain.LikeState{Liked: false, Total: 4}, anon)
	f.cardLikes.AssertNumberOfCalls(t, "Exists", 1)
}

func TestLikeService_CardLikers(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()

	f := newFixture()
	f.cardLikes.On("ListLikers", ctx, cardID, 5).Return([]domain.UserSummary{{ID: uuid.New()}}, nil).Once()

	likers, err := f.svc.CardLikers(ctx, cardID)
	require.NoError(t, err)
	assert.Len(t, likers, 1)
	f.cardLikes.AssertExpectations(t)
}

func TestLikeService_ToggleCommentLike(t *testing.T) {
	ctx := context.Background()
	liker := &domain.User{ID: uuid.New(), Name: strPtr("Ada")}
	comment := &domain.Comment{ID: uuid.New(), CardID: uuid.New(), UserID: uuid.New()}

	t.Run("Like then unlike", func(t *testing.T) {
		f := newFixture()
		f.comments.On("GetByID", ctx, comment.ID).Return(comment, nil).Twice()
		f.commentLikes.On("Toggle", ctx, liker.ID, comment.ID).Return(true, true, nil).Once()
		f.commentLikes.On("Toggle", ctx, liker.ID, comment.ID).Return(false, true, nil).Once()
		f.users.On("GetByID", mock.Anything, liker.ID).Return(liker, nil).Once()
		f.activities.On("Create", ctx, mock.MatchedBy(func(a *domain.Activity) bool {
			return a.Kind == domain.ActivityLikeComment && *a.TargetID == comment.ID
		})).Return(nil).Once()
		f.activities.On("Create", ctx, mock.MatchedBy(func(a *domain.Activity) bool {
			return a.Kind == domain.ActivityUnlikeComment
		})).Return(nil).Once()
		f.notifs.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == comment.UserID && n.Type == domain.NotifLikeComment &&
				n.Message == "Ada liked your comment" && n.Link == "/card/"+comment.CardID.String()
		})).Return(nil).Once()
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

		first, err := f.svc.ToggleCommentLike(ctx, liker.ID, comment.ID)
		require.NoError(t, err)
		assert.True(t, first.Liked)

		second, err := f.svc.ToggleCommentLike(ctx, liker.ID, comment.ID)
		require.NoError(t, err)
		assert.False(t, second.Liked)

		f.activities.AssertExpectations(t)
		f.notifs.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("Missing comment", func(t *testing.T) {
		f := newFixture()
		missing := uuid.New()
		f.comments.On("GetByID", ctx, missing).Return(nil, nil).Once()

		_, err := f.svc.ToggleCommentLike(ctx, liker.ID, missing)
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}
