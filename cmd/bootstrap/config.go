package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig reads the environment once at boot. Missing required variables
// abort the start here, before anything else is wired.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	slog.Info("configuration loaded", "port", cfg.Server.Port)
	return cfg, nil
}
