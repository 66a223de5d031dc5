package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"mbti-social/internal/domain"
)

type ActivityFilter struct {
	ActorID *uuid.UUID
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	List(ctx context.Context, filter ActivityFilter, params domain.PaginationParams) ([]domain.ActivityView, error)
}

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (id, actor_id, type, target_id, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		activity.ID, activity.ActorID, activity.Kind, activity.TargetID, activity.Message,
	).Scan(&activity.CreatedAt)
	return errors.Wrap(err, "unable to record activity")
}

// List returns activities newest first, optionally restricted to one actor.
func (r *activityRepository) List(ctx context.Context, filter ActivityFilter, params domain.PaginationParams) ([]domain.ActivityView, error) {
	wrapMsg := "unable to list activities"
	params.Validate()

	builder := psql.
		Select(
			"a.id", "a.actor_id", "a.type", "a.target_id", "a.message", "a.created_at",
			`u.name AS "user.name"`, `u.image AS "user.image"`,
			`c.id AS "card.id"`, `c.title AS "card.title"`,
		).
		From("activities a").
		Join("users u ON u.id = a.actor_id").
		LeftJoin("cards c ON c.id = a.target_id").
		OrderBy("a.created_at DESC", "a.id DESC").
		Limit(uint64(params.PageSize)).
		Offset(uint64(params.Offset()))

	if filter.ActorID != nil {
		builder = builder.Where(sq.Eq{"a.actor_id": *filter.ActorID})
	}

	statement, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	activities := []domain.ActivityView{}
	if err := r.db.SelectContext(ctx, &activities, statement, args...); err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	for i := range activities {
		activities[i].Resolve()
	}
	return activities, nil
}
