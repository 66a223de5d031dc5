package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mbti-social/internal/gateway"
	"mbti-social/internal/handler"
	"mbti-social/internal/middleware"
	"mbti-social/internal/mocks"
	"mbti-social/internal/service/auth"
	"mbti-social/internal/service/outbox"
	"mbti-social/internal/service/ratelimit"
)

func newRoutedApp(t *testing.T, authSvc *mocks.AuthService, limiter ratelimit.Limiter, gw *gateway.Server) *fiber.App {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	likeSvc := new(mocks.LikeService)
	h := &handler.Handlers{
		Auth:         handler.NewAuthHandler(),
		User:         handler.NewUserHandler(new(mocks.UserService)),
		Card:         handler.NewCardHandler(likeSvc),
		Comment:      handler.NewCommentHandler(new(mocks.CommentService), likeSvc),
		Follow:       handler.NewFollowHandler(new(mocks.FollowService)),
		Quiz:         handler.NewQuizHandler(new(mocks.QuizService)),
		Activity:     handler.NewActivityHandler(new(mocks.ActivityService), 20),
		Notification: handler.NewNotificationHandler(new(mocks.NotificationService)),
		Admin:        handler.NewAdminHandler(outbox.NewReplayer(outbox.NewMemoryStore(), time.Minute, 3, log.WithField("component", "outbox"))),
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.NewErrorHandler(log)})
	app.Use(middleware.RequestInfo())
	setupRoutes(app, h, authSvc, limiter, gw, log)
	return app
}

func TestRoutes_WritesAreThrottledBeforeAuth(t *testing.T) {
	authSvc := new(mocks.AuthService)
	authSvc.On("ValidateAccessToken", "forged").Return(nil, auth.ErrInvalidToken)
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Options{Max: 10, Window: time.Minute})
	app := newRoutedApp(t, authSvc, limiter, nil)

	send := func() *http.Response {
		req := httptest.NewRequest("POST", "/api/card/toggle-like", nil)
		req.Header.Set("Authorization", "Bearer forged")
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	for i := 0; i < 10; i++ {
		assert.Equal(t, fiber.StatusUnauthorized, send().StatusCode)
	}

	limited := send()
	assert.Equal(t, fiber.StatusTooManyRequests, limited.StatusCode)
	assert.NotEmpty(t, limited.Header.Get("Retry-After"))
	authSvc.AssertNumberOfCalls(t, "ValidateAccessToken", 10)
}

func TestRoutes_ReadsAreNotThrottled(t *testing.T) {
	authSvc := new(mocks.AuthService)
	authSvc.On("ValidateAccessToken", mock.Anything).Return(nil, auth.ErrInvalidToken)
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Options{Max: 1, Window: time.Minute})
	app := newRoutedApp(t, authSvc, limiter, nil)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/notifications/unread-count", nil)
		req.Header.Set("Authorization", "Bearer forged")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestRoutes_RealtimeMountedOnlyWithGateway(t *testing.T) {
	authSvc := new(mocks.AuthService)
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Options{Max: 10, Window: time.Minute})

	resp, err := newRoutedApp(t, authSvc, limiter, nil).Test(httptest.NewRequest("GET", "/realtime", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	log := logrus.New()
	log.SetOutput(io.Discard)
	gw := gateway.NewServer(authSvc, nil, "*", log)
	resp, err = newRoutedApp(t, authSvc, limiter, gw).Test(httptest.NewRequest("GET", "/realtime", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
