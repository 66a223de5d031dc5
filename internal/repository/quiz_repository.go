package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"mbti-social/internal/domain"
)

type QuizRepository interface {
	ExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error)
	// CreateWithCard stores the result and its card in one transaction.
	CreateWithCard(ctx context.Context, result *domain.QuizResult, card *domain.Card) error
}

type quizRepository struct {
	db *sqlx.DB
}

func NewQuizRepository(db *sqlx.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) ExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM quiz_results WHERE user_id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, errors.Wrap(err, "unable to check quiz result")
	}
	return exists, nil
}

func (r *quizRepository) CreateWithCard(ctx context.Context, result *domain.QuizResult, card *domain.Card) error {
	wrapMsg := "unable to save quiz result"

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO quiz_results (id, user_id, mbti_type, score_detail)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		result.ID, result.UserID, result.MBTIType, result.ScoreDetail,
	).Scan(&result.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrQuizCompleted
		}
		return errors.Wrap(err, wrapMsg)
	}

	card.QuizResultID = &result.ID
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO cards (id, user_id, quiz_result_id, title, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		card.ID, card.UserID, card.QuizResultID, card.Title, card.Description, card.ImageURL,
	).Scan(&card.CreatedAt)
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	return errors.Wrap(tx.Commit(), wrapMsg)
}
