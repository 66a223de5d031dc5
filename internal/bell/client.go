package bell

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"mbti-social/internal/domain"
)

// Client talks to the notification readers of the API.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(token).
			SetTimeout(10 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

func (c *Client) List(ctx context.Context) ([]domain.Notification, error) {
	var list []domain.Notification
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&list).
		Get("/api/notifications")
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch notifications")
	}
	if resp.IsError() {
		return nil, errors.Errorf("fetch notifications: %s", resp.Status())
	}
	return list, nil
}

func (c *Client) MarkAllRead(ctx context.Context) (domain.MarkReadResult, error) {
	var result domain.MarkReadResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Post("/api/notifications/mark-read")
	if err != nil {
		return result, errors.Wrap(err, "unable to mark notifications as read")
	}
	if resp.IsError() {
		return result, errors.Errorf("mark notifications as read: %s", resp.Status())
	}
	return result, nil
}
