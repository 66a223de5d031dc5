package gateway

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const sendBuffer = 64

// Source yields raw envelopes published on a channel.
type Source interface {
	Subscribe(ctx context.Context, channel string) (Subscription, error)
}

type Subscription interface {
	Messages() <-chan []byte
	Close() error
}

type redisSource struct {
	client *redis.Client
}

func NewRedisSource(client *redis.Client) Source {
	return &redisSource{client: client}
}

func (s *redisSource) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	pubsub := s.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, errors.Wrapf(err, "unable to subscribe to %s", channel)
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		out:    make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
	go sub.forward()
	return sub, nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	out    chan []byte
	done   chan struct{}
	once   sync.Once
}

func (s *redisSubscription) forward() {
	defer close(s.out)
	for msg := range s.pubsub.Channel() {
		select {
		case s.out <- []byte(msg.Payload):
		case <-s.done:
			return
		}
	}
}

func (s *redisSubscription) Messages() <-chan []byte {
	return s.out
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}
