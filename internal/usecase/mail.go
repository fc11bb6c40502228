package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/gottliebdinh/moggi-admin/internal/infra/mail"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
)

var (
	ErrMailFieldsMissing = errors.New("missing required mail fields")
	ErrMailSendFailed    = errors.New("failed to send mail")
)

type MailUseCase interface {
	SendGuestMessage(ctx context.Context, kind, to, subject, message string) error
}

type mailUseCaseImpl struct {
	sender mail.Sender
}

func NewMailUseCase(sender mail.Sender) MailUseCase {
	return &mailUseCaseImpl{sender: sender}
}

// SendGuestMessage wraps a staff-written note in the branded layout and
// mails it to the guest. kind picks the reservation or order variant and the
// default subject when none is given.
func (u *mailUseCaseImpl) SendGuestMessage(ctx context.Context, kind, to, subject, message string) error {
	if strings.TrimSpace(to) == "" || strings.TrimSpace(message) == "" || strings.TrimSpace(kind) == "" {
		return ErrMailFieldsMissing
	}

	var (
		html string
		err  error
	)
	if kind == "order" {
		html, err = mail.RenderOrderMessage(message)
	} else {
		html, err = mail.RenderReservationMessage(message)
	}
	if err != nil {
		return errs.Mark(err, ErrMailSendFailed)
	}

	if subject == "" {
		subject = mail.DefaultSubject(kind)
	}

	if err := u.sender.Send(ctx, to, subject, html); err != nil {
		return errs.Mark(err, ErrMailSendFailed)
	}
	return nil
}
