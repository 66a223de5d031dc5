package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type FollowRepository interface {
	Toggle(ctx context.Context, followerID, followingID uuid.UUID) (followed bool, changed bool, err error)
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Toggle(ctx context.Context, followerID, followingID uuid.UUID) (bool, bool, error) {
	followed, changed, err := togglePair(ctx, r.db,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		`INSERT INTO follows (id, follower_id, following_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (follower_id, following_id) DO NOTHING`,
		[]interface{}{followerID, followingID},
		[]interface{}{uuid.New(), followerID, followingID},
	)
	if err != nil {
		return false, false, errors.Wrap(err, "unable to toggle follow")
	}
	return followed, changed, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, followerID, followingID); err != nil {
		return false, errors.Wrap(err, "unable to check follow")
	}
	return exists, nil
}
