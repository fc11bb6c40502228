package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"github.com/gottliebdinh/moggi-admin/internal/infra/db"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDBPool,
	),
)

// NewDBPool opens the pgx pool and ties its lifetime to the fx lifecycle.
// The pool is pinged on start so a bad DSN fails the boot instead of the
// first request.
func NewDBPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
		OnStop: func(context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			slog.Info("database pool closed")
			return nil
		},
	})

	return pool, nil
}
