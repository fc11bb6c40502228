package bootstrap

import (
	"go.uber.org/fx"

	"github.com/gottliebdinh/moggi-admin/internal/infra/mail"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewMailSender,
			fx.As(new(mail.Sender)),
		),
	),
)

func NewMailSender(cfg config.Config) *mail.ResendSender {
	return mail.NewResendSender(cfg.Mail)
}
