package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbti-social/internal/domain"
	"mbti-social/internal/middleware"
	"mbti-social/internal/mocks"
	"mbti-social/internal/service/auth"
	"mbti-social/internal/service/realtime"
)

type fakeSource struct {
	mu   sync.Mutex
	subs map[string]*fakeSubscription
}

func newFakeSource() *fakeSource {
	return &fakeSource{subs: make(map[string]*fakeSubscription)}
}

func (f *fakeSource) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub := &fakeSubscription{ch: make(chan []byte, 4)}
	f.subs[channel] = sub
	return sub, nil
}

func (f *fakeSource) get(channel string) *fakeSubscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subs[channel]
}

type fakeSubscription struct {
	ch chan []byte
}

func (s *fakeSubscription) Messages() <-chan []byte { return s.ch }
func (s *fakeSubscription) Close() error            { return nil }

type failingSource struct{}

func (failingSource) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	return nil, errors.New("redis down")
}

// newTestServer serves the gateway from a real listener; upgrades cannot go
// through app.Test.
func newTestServer(t *testing.T, userID uuid.UUID, source Source) string {
	t.Helper()
	authSvc := new(mocks.AuthService)
	authSvc.On("ValidateAccessToken", "good").Return(&auth.Claims{UserID: userID}, nil)
	authSvc.On("ValidateAccessToken", "bad").Return(nil, auth.ErrInvalidToken)

	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.NewErrorHandler(log),
		DisableStartupMessage: true,
	})
	NewServer(authSvc, source, "*", log).Register(app, "/realtime")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go app.Listener(ln)
	t.Cleanup(func() { app.Shutdown() })

	return "ws://" + ln.Addr().String()
}

func wsURL(base, query string) string {
	return base + "/realtime?" + query
}

func TestGateway_Rejections(t *testing.T) {
	userID := uuid.New()
	srv := newTestServer(t, userID, newFakeSource())

	cases := []struct {
		name   string
		query  string
		status int
	}{
		{"Missing token", "channel=" + domain.UserChannel(userID), http.StatusUnauthorized},
		{"Invalid token", "token=bad&channel=" + domain.UserChannel(userID), http.StatusUnauthorized},
		{"Malformed channel", "token=good&channel=presence-room", http.StatusBadRequest},
		{"Another user's channel", "token=good&channel=" + domain.UserChannel(uuid.New()), http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, tc.query), nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)

			var body middleware.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Code)
		})
	}
}

func TestGateway_ForwardsEnvelopes(t *testing.T) {
	userID := uuid.New()
	channel := domain.UserChannel(userID)
	source := newFakeSource()
	srv := newTestServer(t, userID, source)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "token=good&channel="+channel), nil)
	require.NoError(t, err)
	defer conn.Close()

	var sub *fakeSubscription
	require.Eventually(t, func() bool {
		sub = source.get(channel)
		return sub != nil
	}, 2*time.Second, 10*time.Millisecond)

	notif := &domain.Notification{ID: uuid.New(), UserID: userID, Type: domain.NotifFollowUser, Message: "Ada followed you", Link: "/profile/x"}
	payload, err := realtime.Encode(channel, notif)
	require.NoError(t, err)
	sub.ch <- payload

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	env, err := realtime.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.RealtimeEventNewNotification, env.Event)
	assert.Equal(t, notif.ID, env.Data.ID)
}

func TestGateway_ClosesWhenChannelUnavailable(t *testing.T) {
	userID := uuid.New()
	srv := newTestServer(t, userID, failingSource{})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "token=good&channel="+domain.UserChannel(userID)), nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseTryAgainLater))
}
