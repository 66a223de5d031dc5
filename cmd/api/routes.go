package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mbti-social/internal/domain"
	"mbti-social/internal/gateway"
	"mbti-social/internal/handler"
	"mbti-social/internal/middleware"
	"mbti-social/internal/service/auth"
	"mbti-social/internal/service/ratelimit"
)

// setupRoutes attaches middleware per route. Writes are throttled before the
// token is checked, so rejected floods never reach the user lookup.
func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service, limiter ratelimit.Limiter, gw *gateway.Server, log *logrus.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if gw != nil {
		gw.Register(app, "/realtime")
	}

	authed := middleware.AuthRequired(authService)
	writes := middleware.RateLimit(limiter, "write", log)
	admin := middleware.RequireRole(domain.RoleAdmin)

	api := app.Group("/api")

	api.Get("/activity/feed", h.Activity.Feed)
	api.Get("/activity/user", h.Activity.ByUser)
	api.Get("/card/like-status", middleware.OptionalAuth(authService), h.Card.LikeStatus)
	api.Get("/card/likers", h.Card.Likers)
	api.Get("/comment", h.Comment.List)
	api.Get("/leaderboard", h.User.Leaderboard)
	api.Get("/check-username", h.User.CheckUsername)

	api.Get("/auth/session", authed, h.Auth.Session)
	api.Get("/follow/status", authed, h.Follow.Status)

	api.Post("/card/toggle-like", writes, authed, h.Card.ToggleLike)
	api.Post("/comment", writes, authed, h.Comment.Create)
	api.Post("/comment/like", writes, authed, h.Comment.ToggleLike)
	api.Post("/follow/toggle", writes, authed, h.Follow.Toggle)
	api.Post("/quiz/submit", writes, authed, h.Quiz.Submit)
	api.Post("/profile", writes, authed, h.User.UpdateProfile)
	api.Post("/user/set-username", writes, authed, h.User.SetUsername)

	notifications := api.Group("/notifications")
	notifications.Get("/", authed, h.Notification.List)
	notifications.Get("/unread-count", authed, h.Notification.GetUnreadCount)
	notifications.Post("/mark-read", writes, authed, h.Notification.MarkAllAsRead)

	api.Get("/admin/outbox", authed, admin, h.Admin.OutboxStatus)
	api.Post("/admin/outbox/drain", authed, admin, h.Admin.DrainOutbox)
}
