package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"mbti-social/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.CommentWithMeta, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, card_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.CardID, comment.UserID, comment.Content,
	).Scan(&comment.CreatedAt)
	return errors.Wrap(err, "unable to create comment")
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT id, card_id, user_id, content, created_at FROM comments WHERE id = $1`
	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load comment")
	}
	return &comment, nil
}

func (r *commentRepository) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.CommentWithMeta, error) {
	query := `
		SELECT
			c.id, c.content, c.created_at,
			u.name AS "user.name", u.image AS "user.image",
			(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS like_count
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.card_id = $1
		ORDER BY c.created_at ASC`

	comments := []domain.CommentWithMeta{}
	if err := r.db.SelectContext(ctx, &comments, query, cardID); err != nil {
		return nil, errors.Wrap(err, "unable to list comments")
	}
	return comments, nil
}

type CommentLikeRepository interface {
	Toggle(ctx context.Context, userID, commentID uuid.UUID) (liked bool, changed bool, err error)
}

type commentLikeRepository struct {
	db *sqlx.DB
}

func NewCommentLikeRepository(db *sqlx.DB) CommentLikeRepository {
	return &commentLikeRepository{db: db}
}

func (r *commentLikeRepository) Toggle(ctx context.Context, userID, commentID uuid.UUID) (bool, bool, error) {
	liked, changed, err := togglePair(ctx, r.db,
		`DELETE FROM comment_likes WHERE user_id = $1 AND comment_id = $2`,
		`INSERT INTO comment_likes (id, user_id, comment_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, comment_id) DO NOTHING`,
		[]interface{}{userID, commentID},
		[]interface{}{uuid.New(), userID, commentID},
	)
	if err != nil {
		return false, false, errors.Wrap(err, "unable to toggle comment like")
	}
	return liked, changed, nil
}
