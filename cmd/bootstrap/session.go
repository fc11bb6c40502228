package bootstrap

import (
	"time"

	"go.uber.org/fx"

	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/session"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionService,
	),
)

func NewSessionService(cfg config.Config) *session.Service {
	duration, err := time.ParseDuration(cfg.Session.Duration)
	if err != nil {
		panic("invalid SESSION_DURATION: " + err.Error())
	}
	return session.NewService(cfg.Session.Secret, duration)
}
