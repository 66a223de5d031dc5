package domain

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

type QuizResult struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"userId" db:"user_id"`
	MBTIType    string          `json:"mbtiType" db:"mbti_type"`
	ScoreDetail json.RawMessage `json:"scoreDetail" db:"score_detail"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

type QuizAnswers struct {
	Q1 string `json:"q1" validate:"required,notblank"`
	Q2 string `json:"q2" validate:"required,notblank"`
	Q3 string `json:"q3" validate:"required,notblank"`
	Q4 string `json:"q4" validate:"required,notblank"`
}

type SubmitQuizInput struct {
	Answers QuizAnswers `json:"answers" validate:"required"`
}

// MBTIType builds the four-letter type from the first letter of each
// trimmed answer.
func (a QuizAnswers) MBTIType() string {
	var b strings.Builder
	for _, answer := range []string{a.Q1, a.Q2, a.Q3, a.Q4} {
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(answer)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

type QuizSubmission struct {
	ResultID uuid.UUID `json:"resultId"`
	CardID   uuid.UUID `json:"cardId"`
	MBTIType string    `json:"mbtiType"`
}
