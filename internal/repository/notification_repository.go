package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"mbti-social/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Notification, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, message, link, read)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.UserID, notif.Type, notif.Message, notif.Link, notif.Read,
	).Scan(&notif.CreatedAt)
	return errors.Wrap(err, "unable to create notification")
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Notification, error) {
	params.Validate()

	query := `
		SELECT id, user_id, type, message, link, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	notifications := []domain.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID, params.PageSize, params.Offset()); err != nil {
		return nil, errors.Wrap(err, "unable to list notifications")
	}
	return notifications, nil
}

// MarkAllAsRead flips every unread notification of the user and reports how many changed.
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `UPDATE notifications SET read = true WHERE user_id = $1 AND read = false`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, errors.Wrap(err, "unable to mark notifications read")
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "unable to mark notifications read")
	}
	return updated, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = false`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, errors.Wrap(err, "unable to count unread notifications")
	}
	return count, nil
}
