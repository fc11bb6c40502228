// Package mail sends transactional mails to guests through the Resend
// HTTP API.
package mail

import (
	"context"

	"github.com/resend/resend-go/v2"

	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
)

// Sender is the outbound mail capability the usecase layer depends on.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

var ErrMailNotConfigured = errs.New("mail sender not configured")

type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(cfg config.MailConfig) *ResendSender {
	if cfg.ResendAPIKey == "" {
		return &ResendSender{from: cfg.From}
	}
	return &ResendSender{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   cfg.From,
	}
}

func (s *ResendSender) Send(ctx context.Context, to, subject, html string) error {
	if s.client == nil {
		return ErrMailNotConfigured
	}
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return errs.Wrap(err, "failed to send mail via resend")
	}
	return nil
}
