package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"mbti-social/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, username, bio string) (*domain.User, error)
	SetUsername(ctx context.Context, id uuid.UUID, username string) error
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, image, username, bio, role, created_at`

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load user")
	}
	return &user, nil
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id <> $2)`
	if err := r.db.GetContext(ctx, &taken, query, username, excludeID); err != nil {
		return false, errors.Wrap(err, "unable to check username")
	}
	return taken, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username, bio string) (*domain.User, error) {
	var user domain.User
	query := `
		UPDATE users SET username = $2, bio = $3
		WHERE id = $1
		RETURNING ` + userColumns

	err := r.db.QueryRowxContext(ctx, query, id, username, bio).StructScan(&user)
	if isUniqueViolation(err) {
		return nil, domain.ErrUsernameTaken
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to update profile")
	}
	return &user, nil
}

func (r *userRepository) SetUsername(ctx context.Context, id uuid.UUID, username string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET username = $2 WHERE id = $1`, id, username)
	if isUniqueViolation(err) {
		return domain.ErrUsernameTaken
	}
	if err != nil {
		return errors.Wrap(err, "unable to set username")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "unable to set username")
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Leaderboard ranks users by likes received on their cards.
func (r *userRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	wrapMsg := "unable to load leaderboard"

	statement, args, err := psql.
		Select(
			"u.id",
			"COALESCE(NULLIF(u.name, ''), 'Anonymous') AS name",
			"COALESCE(NULLIF(u.username, ''), u.id::text) AS username",
			"u.image",
			"COALESCE((SELECT q.mbti_type FROM quiz_results q WHERE q.user_id = u.id ORDER BY q.created_at DESC LIMIT 1), 'Unknown') AS mbti_type",
			"COUNT(cl.id) AS like_count",
		).
		From("users u").
		LeftJoin("cards c ON c.user_id = u.id").
		LeftJoin("card_likes cl ON cl.card_id = c.id").
		GroupBy("u.id").
		OrderBy("like_count DESC", "u.created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	entries := []domain.LeaderboardEntry{}
	if err := r.db.SelectContext(ctx, &entries, statement, args...); err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	return entries, nil
}
