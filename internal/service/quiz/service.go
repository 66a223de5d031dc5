package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mbti-social/internal/domain"
	"mbti-social/internal/repository"
	"mbti-social/internal/service/activity"
)

const (
	cardTitle    = "My MBTI Card"
	cardImageURL = "https://source.unsplash.com/random/400x300/?mbti"
)

type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, answers domain.QuizAnswers) (*domain.QuizSubmission, error)
}

type service struct {
	quizRepo    repository.QuizRepository
	activitySvc activity.Service
}

func NewService(quizRepo repository.QuizRepository, activitySvc activity.Service) Service {
	return &service{
		quizRepo:    quizRepo,
		activitySvc: activitySvc,
	}
}

func (s *service) Submit(ctx context.Context, userID uuid.UUID, answers domain.QuizAnswers) (*domain.QuizSubmission, error) {
	taken, err := s.quizRepo.ExistsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		s.recordRejected(ctx, userID)
		return nil, domain.ErrQuizCompleted
	}

	scoreDetail, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	mbtiType := answers.MBTIType()
	title := cardTitle
	description := fmt.Sprintf("Official result: %s", mbtiType)
	imageURL := cardImageURL

	result := &domain.QuizResult{
		ID:          uuid.New(),
		UserID:      userID,
		MBTIType:    mbtiType,
		ScoreDetail: scoreDetail,
	}
	card := &domain.Card{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       &title,
		Description: &description,
		ImageURL:    &imageURL,
	}

	if err := s.quizRepo.CreateWithCard(ctx, result, card); err != nil {
		if errors.Is(err, domain.ErrQuizCompleted) {
			s.recordRejected(ctx, userID)
		}
		return nil, err
	}

	s.activitySvc.Record(ctx, activity.RecordInput{
		ActorID:  userID,
		Kind:     domain.ActivitySubmitQuiz,
		TargetID: &card.ID,
		Message:  fmt.Sprintf("Submitted MBTI quiz. Result: %s", mbtiType),
	})

	return &domain.QuizSubmission{
		ResultID: result.ID,
		CardID:   card.ID,
		MBTIType: mbtiType,
	}, nil
}

func (s *service) recordRejected(ctx context.Context, userID uuid.UUID) {
	s.activitySvc.Record(ctx, activity.RecordInput{
		ActorID: userID,
		Kind:    domain.ActivityQuizRejected,
		Message: "User attempted to retake the MBTI quiz.",
	})
}
