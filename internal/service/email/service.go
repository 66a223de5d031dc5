package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v3"

	"mbti-social/internal/config"
)

type Service interface {
	SendNotificationEmail(ctx context.Context, toEmail, recipientName, message, link string) error
}

type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type service struct {
	sender sender
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &service{
		sender: client.Emails,
		config: cfg,
	}
}

var notificationTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #222;">
	<h2>{{.Title}}</h2>
	<p>Hi {{.Name}},</p>
	<p>{{.Message}}</p>
	<p><a href="{{.Link}}">Open MBTI Social</a></p>
</body>
</html>`))

func (s *service) sendEmail(toEmail, subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrap(err, "failed to execute email template")
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("MBTI Social <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.sender.Send(params)
	return errors.Wrap(err, "failed to send email")
}

func (s *service) SendNotificationEmail(ctx context.Context, toEmail, recipientName, message, link string) error {
	data := struct {
		Title   string
		Name    string
		Message string
		Link    string
	}{
		Title:   "You have a new notification",
		Name:    recipientName,
		Message: message,
		Link:    link,
	}
	return s.sendEmail(toEmail, "New activity on MBTI Social", notificationTemplate, data)
}
