package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"github.com/gottliebdinh/moggi-admin/internal/infra/mail"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/clock"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/session"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewReservationUseCase,
		NewAuthUseCase,
		usecase.NewScheduleUseCase,
		usecase.NewGuestUseCase,
		usecase.NewRoomUseCase,
		usecase.NewSettingsUseCase,
		usecase.NewOrderUseCase,
		usecase.NewMailUseCase,
	),
)

func NewReservationUseCase(
	reservationRepo usecase.ReservationRepository,
	db *pgxpool.Pool,
	mailer mail.Sender,
	cfg config.Config,
) usecase.ReservationUseCase {
	return usecase.NewReservationUseCase(reservationRepo, db, mailer, cfg.Mail.SendTimeout)
}

func NewAuthUseCase(cfg config.Config, sessions *session.Service, clk clock.Clock) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(cfg.Session.AdminPassword, sessions, clk)
}
