// Package gateway streams a user's private realtime channel over a websocket.
package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mbti-social/internal/domain"
	"mbti-social/internal/middleware"
	"mbti-social/internal/service/auth"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	channelLocalKey = "realtime_channel"
)

type Server struct {
	authService auth.Service
	source      Source
	config      websocket.Config
	log         *logrus.Entry
}

// NewServer accepts origins as a comma separated list; "*" allows any origin.
func NewServer(authService auth.Service, source Source, origins string, log *logrus.Logger) *Server {
	var allowed []string
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}

	return &Server{
		authService: authService,
		source:      source,
		config: websocket.Config{
			Origins:         allowed,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log.WithField("component", "gateway"),
	}
}

// Register mounts the gateway on path. Handshake failures go through the
// app's error handler like any other route.
func (s *Server) Register(router fiber.Router, path string) {
	router.Get(path, s.Authorize, websocket.New(s.stream, s.config))
}

// Authorize checks the token and channel ownership before the upgrade.
func (s *Server) Authorize(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	token := c.Query("token")
	if token == "" {
		return middleware.Unauthorized("Token is required")
	}

	claims, err := s.authService.ValidateAccessToken(token)
	if err != nil {
		return middleware.Unauthorized("Invalid or expired token")
	}

	channel := c.Query("channel")
	owner, ok := domain.ParseUserChannel(channel)
	if !ok {
		return middleware.BadRequest("Invalid channel")
	}
	if owner != claims.UserID {
		return middleware.Forbidden("Channel belongs to another user")
	}

	c.Locals(channelLocalKey, channel)
	return c.Next()
}

// stream owns conn until it returns; the read side runs in its own goroutine
// and is joined before the connection is handed back.
func (s *Server) stream(conn *websocket.Conn) {
	channel, _ := conn.Locals(channelLocalKey).(string)
	log := s.log.WithField("channel", channel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := s.source.Subscribe(ctx, channel)
	if err != nil {
		log.WithError(err).Error("subscribe failed")
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "Realtime channel unavailable"))
		return
	}
	defer sub.Close()

	log.Debug("client connected")
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		defer cancel()
		readPump(conn, log)
	}()

	writePump(ctx, conn, sub)
	conn.Close()
	<-readDone
	log.Debug("client disconnected")
}

// readPump only services control frames; inbound data frames are discarded.
func readPump(conn *websocket.Conn, log *logrus.Entry) {
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).Warn("websocket read failed")
			}
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, sub Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	messages := sub.Messages()
	for {
		select {
		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case payload, ok := <-messages:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
