package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
)

const uniqueViolation = "23505"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repositories struct {
	User         UserRepository
	Card         CardRepository
	CardLike     CardLikeRepository
	Comment      CommentRepository
	CommentLike  CommentLikeRepository
	Follow       FollowRepository
	Quiz         QuizRepository
	Activity     ActivityRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Card:         NewCardRepository(db),
		CardLike:     NewCardLikeRepository(db),
		Comment:      NewCommentRepository(db),
		CommentLike:  NewCommentLikeRepository(db),
		Follow:       NewFollowRepository(db),
		Quiz:         NewQuizRepository(db),
		Activity:     NewActivityRepository(db),
		Notification: NewNotificationRepository(db),
	}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// togglePair flips the presence of a unique (actor, target) row in one pass:
// a conditional delete decides the direction, otherwise the row is inserted
// with ON CONFLICT DO NOTHING. changed is false when a concurrent request
// already produced the requested state.
func togglePair(ctx context.Context, db execer, deleteQuery, insertQuery string, deleteArgs, insertArgs []interface{}) (present bool, changed bool, err error) {
	res, err := db.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		return false, false, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, false, err
	}
	if deleted > 0 {
		return false, true, nil
	}

	res, err = db.ExecContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		if isUniqueViolation(err) {
			return true, false, nil
		}
		return false, false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, false, err
	}
	return true, inserted > 0, nil
}
