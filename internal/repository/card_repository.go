package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"mbti-social/internal/domain"
)

type CardRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
}

type cardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	var card domain.Card
	query := `
		SELECT id, user_id, quiz_result_id, title, description, image_url, created_at
		FROM cards WHERE id = $1`
	err := r.db.GetContext(ctx, &card, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load card")
	}
	return &card, nil
}

type CardLikeRepository interface {
	Toggle(ctx context.Context, userID, cardID uuid.UUID, source string) (liked bool, changed bool, err error)
	Exists(ctx context.Context, userID, cardID uuid.UUID) (bool, error)
	CountByCard(ctx context.Context, cardID uuid.UUID) (int64, error)
	ListLikers(ctx context.Context, cardID uuid.UUID, limit int) ([]domain.UserSummary, error)
}

type cardLikeRepository struct {
	db *sqlx.DB
}

func NewCardLikeRepository(db *sqlx.DB) CardLikeRepository {
	return &cardLikeRepository{db: db}
}

func (r *cardLikeRepository) Toggle(ctx context.Context, userID, cardID uuid.UUID, source string) (bool, bool, error) {
	if source == "" {
		source = "unknown"
	}

	liked, changed, err := togglePair(ctx, r.db,
		`DELETE FROM card_likes WHERE user_id = $1 AND card_id = $2`,
		`INSERT INTO card_likes (id, user_id, card_id, source)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, card_id) DO NOTHING`,
		[]interface{}{userID, cardID},
		[]interface{}{uuid.New(), userID, cardID, source},
	)
	if err != nil {
		return false, false, errors.Wrap(err, "unable to toggle card like")
	}
	return liked, changed, nil
}

func (r *cardLikeRepository) Exists(ctx context.Context, userID, cardID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM card_likes WHERE user_id = $1 AND card_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, userID, cardID); err != nil {
		return false, errors.Wrap(err, "unable to check card like")
	}
	return exists, nil
}

func (r *cardLikeRepository) CountByCard(ctx context.Context, cardID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM card_likes WHERE card_id = $1`
	if err := r.db.GetContext(ctx, &count, query, cardID); err != nil {
		return 0, errors.Wrap(err, "unable to count card likes")
	}
	return count, nil
}

func (r *cardLikeRepository) ListLikers(ctx context.Context, cardID uuid.UUID, limit int) ([]domain.UserSummary, error) {
	query := `
		SELECT u.id, u.name, u.image, u.username
		FROM card_likes cl
		JOIN users u ON u.id = cl.user_id
		WHERE cl.card_id = $1
		ORDER BY cl.created_at DESC
		LIMIT $2`

	likers := []domain.UserSummary{}
	if err := r.db.SelectContext(ctx, &likers, query, cardID, limit); err != nil {
		return nil, errors.Wrap(err, "unable to list card likers")
	}
	return likers, nil
}
