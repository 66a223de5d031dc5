// Package outbox keeps secondary writes that failed so they can be replayed later.
package outbox

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Kind string

const (
	KindActivity     Kind = "activity"
	KindNotification Kind = "notification"
	KindPublish      Kind = "publish"
)

const DefaultKey = "outbox:dead-letter"

type Entry struct {
	ID        uuid.UUID       `json:"id"`
	Kind      Kind            `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	Attempts  int             `json:"attempts"`
	LastError string          `json:"lastError"`
	FailedAt  time.Time       `json:"failedAt"`
}

// NewEntry wraps a failed write and the error that caused it.
func NewEntry(kind Kind, payload interface{}, cause error) (Entry, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Entry{}, errors.Wrap(err, "unable to encode outbox payload")
	}

	entry := Entry{
		ID:       uuid.New(),
		Kind:     kind,
		Payload:  raw,
		Attempts: 1,
		FailedAt: time.Now(),
	}
	if cause != nil {
		entry.LastError = cause.Error()
	}
	return entry, nil
}

type Store interface {
	Push(ctx context.Context, entry Entry) error
	// Pop returns false when the store is empty.
	Pop(ctx context.Context) (Entry, bool, error)
	Len(ctx context.Context) (int64, error)
}

type redisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) Store {
	if key == "" {
		key = DefaultKey
	}
	return &redisStore{client: client, key: key}
}

func (s *redisStore) Push(ctx context.Context, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "unable to encode outbox entry")
	}
	return errors.Wrap(s.client.LPush(ctx, s.key, raw).Err(), "unable to push outbox entry")
}

func (s *redisStore) Pop(ctx context.Context) (Entry, bool, error) {
	raw, err := s.client.RPop(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, errors.Wrap(err, "unable to pop outbox entry")
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, false, errors.Wrap(err, "unable to decode outbox entry")
	}
	return entry, true, nil
}

func (s *redisStore) Len(ctx context.Context) (int64, error) {
	n, err := s.client.LLen(ctx, s.key).Result()
	return n, errors.Wrap(err, "unable to read outbox length")
}

type memoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryStore is a FIFO store for single-process setups and tests.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Push(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *memoryStore) Pop(_ context.Context) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return Entry{}, false, nil
	}
	entry := s.entries[0]
	s.entries = s.entries[1:]
	return entry, true, nil
}

func (s *memoryStore) Len(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.entries)), nil
}
