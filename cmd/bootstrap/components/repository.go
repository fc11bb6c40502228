package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"github.com/gottliebdinh/moggi-admin/internal/infra/repository"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repository.NewTableRepository,
			fx.As(new(usecase.TableRepository)),
		),
		fx.Annotate(
			repository.NewSettingsRepository,
			fx.As(new(usecase.SettingsRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
