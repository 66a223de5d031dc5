package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

type HandlerFunc func(ctx context.Context, payload json.RawMessage) error

type Replayer struct {
	store       Store
	handlers    map[Kind]HandlerFunc
	interval    time.Duration
	maxAttempts int
	log         *logrus.Entry
}

func NewReplayer(store Store, interval time.Duration, maxAttempts int, log *logrus.Entry) *Replayer {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Replayer{
		store:       store,
		handlers:    make(map[Kind]HandlerFunc),
		interval:    interval,
		maxAttempts: maxAttempts,
		log:         log.WithField("component", "outbox"),
	}
}

// Handle registers the replay function for one kind. Not safe to call once Run has started.
func (r *Replayer) Handle(kind Kind, fn HandlerFunc) {
	r.handlers[kind] = fn
}

func (r *Replayer) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Drain(ctx); err != nil {
				r.log.WithError(err).Error("outbox drain failed")
			}
		}
	}
}

// Pending reports how many entries wait in the dead-letter store.
func (r *Replayer) Pending(ctx context.Context) (int64, error) {
	return r.store.Len(ctx)
}

// Drain replays what is queued right now and returns how many entries succeeded.
// Entries that fail again are re-queued until they reach maxAttempts.
func (r *Replayer) Drain(ctx context.Context) (int, error) {
	pending, err := r.store.Len(ctx)
	if err != nil {
		return 0, err
	}

	replayed := 0
	for i := int64(0); i < pending; i++ {
		entry, ok, err := r.store.Pop(ctx)
		if err != nil {
			return replayed, err
		}
		if !ok {
			break
		}

		fields := logrus.Fields{"entry": entry.ID, "kind": entry.Kind, "attempts": entry.Attempts}

		handler, found := r.handlers[entry.Kind]
		if !found {
			r.log.WithFields(fields).Warn("dropping outbox entry with no handler")
			continue
		}

		if err := handler(ctx, entry.Payload); err != nil {
			entry.Attempts++
			entry.LastError = err.Error()
			entry.FailedAt = time.Now()
			if entry.Attempts >= r.maxAttempts {
				r.log.WithFields(fields).WithError(err).Error("dropping outbox entry after max attempts")
				continue
			}
			if pushErr := r.store.Push(ctx, entry); pushErr != nil {
				return replayed, pushErr
			}
			continue
		}

		replayed++
		r.log.WithFields(fields).Info("replayed outbox entry")
	}
	return replayed, nil
}
