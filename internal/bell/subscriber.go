package bell

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mbti-social/internal/domain"
	"mbti-social/internal/service/realtime"
)

// Subscriber feeds realtime notifications of one user into a State.
// It does not reconnect after the connection drops.
type Subscriber struct {
	gatewayURL string
	token      string
	userID     uuid.UUID
	state      *State
	log        *logrus.Entry
	onPush     func(domain.Notification)
}

func NewSubscriber(gatewayURL, token string, userID uuid.UUID, state *State, log *logrus.Entry) *Subscriber {
	return &Subscriber{
		gatewayURL: gatewayURL,
		token:      token,
		userID:     userID,
		state:      state,
		log:        log.WithField("component", "subscriber"),
	}
}

// OnPush registers a callback run after each newly added notification.
func (s *Subscriber) OnPush(fn func(domain.Notification)) {
	s.onPush = fn
}

func (s *Subscriber) endpoint() (string, error) {
	u, err := url.Parse(s.gatewayURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid gateway url")
	}
	u.Path = "/realtime"
	q := u.Query()
	q.Set("token", s.token)
	q.Set("channel", domain.UserChannel(s.userID))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Run blocks until ctx is cancelled or the connection fails.
func (s *Subscriber) Run(ctx context.Context) error {
	endpoint, err := s.endpoint()
	if err != nil {
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "connection failed")
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "read failed")
		}

		env, err := realtime.Decode(raw)
		if err != nil {
			s.log.WithError(err).Warn("skipping malformed message")
			continue
		}
		if env.Event != domain.RealtimeEventNewNotification {
			continue
		}

		if s.state.Push(env.Data) && s.onPush != nil {
			s.onPush(env.Data)
		}
	}
}
