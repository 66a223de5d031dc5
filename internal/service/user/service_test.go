package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mbti-social/internal/domain"
	"mbti-social/internal/mocks"
	"mbti-social/internal/service/activity"
	"mbti-social/internal/service/user"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, user.ValidateUsername("ada_99"))
	assert.ErrorIs(t, user.ValidateUsername("Ada"), domain.ErrInvalidUsername)
	assert.ErrorIs(t, user.ValidateUsername("ab"), domain.ErrInvalidUsername)
	assert.ErrorIs(t, user.ValidateUsername("has space"), domain.ErrInvalidUsername)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		activitySvc := new(mocks.ActivityService)
		svc := user.NewService(repo, activitySvc)
		username := "ada"

		repo.On("UsernameTaken", ctx, "ada", userID).Return(false, nil).Once()
		repo.On("UpdateProfile", ctx, userID, "ada", "hello").Return(&domain.User{ID: userID, Username: &username}, nil).Once()
		activitySvc.On("Record", ctx, activity.RecordInput{
			ActorID: userID,
			Kind:    domain.ActivityUpdateProfile,
			Message: `Updated profile: username "ada", bio "hello"`,
		}).Once()

		updated, err := svc.UpdateProfile(ctx, userID, domain.UpdateProfileInput{Username: " ada ", Bio: "hello "})

		require.NoError(t, err)
		assert.Equal(t, "ada", *updated.Username)
		activitySvc.AssertExpectations(t)
	})

	t.Run("Taken username records a rejection", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		activitySvc := new(mocks.ActivityService)
		svc := user.NewService(repo, activitySvc)

		repo.On("UsernameTaken", ctx, "grace", userID).Return(true, nil).Once()
		activitySvc.On("Record", ctx, activity.RecordInput{
			ActorID: userID,
			Kind:    domain.ActivityUpdateProfileRejected,
			Message: `Username "grace" is already taken`,
		}).Once()

		_, err := svc.UpdateProfile(ctx, userID, domain.UpdateProfileInput{Username: "grace"})

		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
		repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		activitySvc.AssertExpectations(t)
	})

	t.Run("Invalid username", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		activitySvc := new(mocks.ActivityService)
		svc := user.NewService(repo, activitySvc)

		_, err := svc.UpdateProfile(ctx, userID, domain.UpdateProfileInput{Username: "No!"})

		assert.ErrorIs(t, err, domain.ErrInvalidUsername)
		activitySvc.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})
}

func TestUserService_SetUsername(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Too short", func(t *testing.T) {
		svc := user.NewService(new(mocks.UserRepository), new(mocks.ActivityService))
		assert.ErrorIs(t, svc.SetUsername(ctx, userID, "ab"), domain.ErrUsernameTooShort)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		activitySvc := new(mocks.ActivityService)
		svc := user.NewService(repo, activitySvc)

		repo.On("UsernameTaken", ctx, "ada_l", userID).Return(false, nil).Once()
		repo.On("SetUsername", ctx, userID, "ada_l").Return(nil).Once()
		activitySvc.On("Record", ctx, mock.MatchedBy(func(in activity.RecordInput) bool {
			return in.Kind == domain.ActivitySetUsername && in.Message == `Set username "ada_l"`
		})).Once()

		require.NoError(t, svc.SetUsername(ctx, userID, "ada_l"))
		activitySvc.AssertExpectations(t)
	})

	t.Run("Unique violation at write time", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		activitySvc := new(mocks.ActivityService)
		svc := user.NewService(repo, activitySvc)

		repo.On("UsernameTaken", ctx, "ada_l", userID).Return(false, nil).Once()
		repo.On("SetUsername", ctx, userID, "ada_l").Return(domain.ErrUsernameTaken).Once()
		activitySvc.On("Record", ctx, mock.MatchedBy(func(in activity.RecordInput) bool {
			return in.Kind == domain.ActivitySetUsernameRejected
		})).Once()

		assert.ErrorIs(t, svc.SetUsername(ctx, userID, "ada_l"), domain.ErrUsernameTaken)
		activitySvc.AssertExpectations(t)
	})
}

func TestUserService_CheckUsername(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := user.NewService(repo, new(mocks.ActivityService))

	repo.On("UsernameTaken", ctx, "ada", uuid.Nil).Return(true, nil).Once()
	repo.On("UsernameTaken", ctx, "grace", uuid.Nil).Return(false, nil).Once()

	available, err := svc.CheckUsername(ctx, "ADA")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.CheckUsername(ctx, "grace")
	require.NoError(t, err)
	assert.True(t, available)

	_, err = svc.CheckUsername(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrUsernameTooShort)
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.UserRepository)
	svc := user.NewService(repo, new(mocks.ActivityService))
	missing := uuid.New()

	repo.On("GetByID", ctx, missing).Return(nil, nil).Once()

	_, err := svc.GetByID(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
