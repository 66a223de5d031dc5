package realtime

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"mbti-social/internal/domain"
)

// Publisher pushes notifications to a user's private channel. Delivery is
// fire-and-forget: nothing is stored when no subscriber is listening.
type Publisher interface {
	Publish(ctx context.Context, notif *domain.Notification) error
}

type redisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) Publisher {
	return &redisPublisher{client: client}
}

func (p *redisPublisher) Publish(ctx context.Context, notif *domain.Notification) error {
	channel := domain.UserChannel(notif.UserID)
	payload, err := Encode(channel, notif)
	if err != nil {
		return err
	}
	return errors.Wrapf(p.client.Publish(ctx, channel, payload).Err(), "unable to publish to %s", channel)
}

// Encode builds the wire envelope for a notification.
func Encode(channel string, notif *domain.Notification) ([]byte, error) {
	payload, err := json.Marshal(domain.RealtimeEnvelope{
		Event:   domain.RealtimeEventNewNotification,
		Channel: channel,
		Data:    *notif,
	})
	return payload, errors.Wrap(err, "unable to encode realtime envelope")
}

// Decode parses an envelope received from a channel.
func Decode(raw []byte) (domain.RealtimeEnvelope, error) {
	var env domain.RealtimeEnvelope
	err := json.Unmarshal(raw, &env)
	return env, errors.Wrap(err, "unable to decode realtime envelope")
}
