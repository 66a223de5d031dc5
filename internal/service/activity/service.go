package activity

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mbti-social/internal/domain"
	"mbti-social/internal/repository"
	"mbti-social/internal/service/outbox"
)

type RecordInput struct {
	ActorID  uuid.UUID
	Kind     domain.ActivityKind
	TargetID *uuid.UUID
	Message  string
}

type Service interface {
	// Record appends one activity. Failures are logged and dead-lettered, never returned.
	Record(ctx context.Context, input RecordInput)
	Feed(ctx context.Context, params domain.PaginationParams) ([]domain.ActivityView, error)
	ListByActor(ctx context.Context, actorID uuid.UUID, params domain.PaginationParams) ([]domain.ActivityView, error)
	Replay(ctx context.Context, payload json.RawMessage) error
}

type service struct {
	activityRepo repository.ActivityRepository
	outbox       outbox.Store
	log          *logrus.Entry
}

func NewService(activityRepo repository.ActivityRepository, store outbox.Store, log *logrus.Entry) Service {
	return &service{
		activityRepo: activityRepo,
		outbox:       store,
		log:          log.WithField("service", "activity"),
	}
}

func (s *service) Record(ctx context.Context, input RecordInput) {
	activity := &domain.Activity{
		ID:       uuid.New(),
		ActorID:  input.ActorID,
		Kind:     input.Kind,
		TargetID: input.TargetID,
		Message:  input.Message,
	}

	fields := logrus.Fields{"actor": input.ActorID, "kind": input.Kind}

	if !input.Kind.Valid() {
		s.log.WithFields(fields).Error("refusing to record unknown activity kind")
		return
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.log.WithFields(fields).WithError(err).Error("failed to record activity")
		s.deadLetter(ctx, activity, err)
	}
}

func (s *service) deadLetter(ctx context.Context, activity *domain.Activity, cause error) {
	if s.outbox == nil {
		return
	}
	entry, err := outbox.NewEntry(outbox.KindActivity, activity, cause)
	if err == nil {
		err = s.outbox.Push(ctx, entry)
	}
	if err != nil {
		s.log.WithField("activity", activity.ID).WithError(err).Error("failed to dead-letter activity")
	}
}

func (s *service) Feed(ctx context.Context, params domain.PaginationParams) ([]domain.ActivityView, error) {
	return s.activityRepo.List(ctx, repository.ActivityFilter{}, params)
}

func (s *service) ListByActor(ctx context.Context, actorID uuid.UUID, params domain.PaginationParams) ([]domain.ActivityView, error) {
	return s.activityRepo.List(ctx, repository.ActivityFilter{ActorID: &actorID}, params)
}

// Replay re-inserts a dead-lettered activity with its original id.
func (s *service) Replay(ctx context.Context, payload json.RawMessage) error {
	var activity domain.Activity
	if err := json.Unmarshal(payload, &activity); err != nil {
		return errors.Wrap(err, "invalid activity payload")
	}
	return s.activityRepo.Create(ctx, &activity)
}
