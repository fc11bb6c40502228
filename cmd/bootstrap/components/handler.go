package components

import (
	"go.uber.org/fx"

	"github.com/gottliebdinh/moggi-admin/internal/handler"
	"github.com/gottliebdinh/moggi-admin/internal/handler/api"
	"github.com/gottliebdinh/moggi-admin/internal/handler/middleware"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewScheduleHandler,
		api.NewGuestHandler,
		api.NewRoomHandler,
		api.NewSettingsHandler,
		api.NewOrderHandler,
		api.NewMailHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	schedule *api.ScheduleHandler,
	guest *api.GuestHandler,
	room *api.RoomHandler,
	settings *api.SettingsHandler,
	order *api.OrderHandler,
	mail *api.MailHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Schedule:    schedule,
		Guest:       guest,
		Room:        room,
		Settings:    settings,
		Order:       order,
		Mail:        mail,
	}
}
