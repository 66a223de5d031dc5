package bell

import (
	"context"

	"github.com/sirupsen/logrus"
)

type Bell struct {
	client *Client
	state  *State
	log    *logrus.Entry
}

func New(client *Client, state *State, log *logrus.Entry) *Bell {
	return &Bell{
		client: client,
		state:  state,
		log:    log.WithField("component", "bell"),
	}
}

func (b *Bell) State() *State {
	return b.state
}

// Open refreshes the list and then marks everything read on the server.
// A failed fetch keeps the previous list.
func (b *Bell) Open(ctx context.Context) {
	list, err := b.client.List(ctx)
	if err != nil {
		b.log.WithError(err).Warn("notification fetch failed")
	} else {
		b.state.Replace(list)
	}

	if _, err := b.client.MarkAllRead(ctx); err != nil {
		b.log.WithError(err).Warn("mark as read failed")
	}
}
