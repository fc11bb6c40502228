package bootstrap

import (
	"go.uber.org/fx"

	"github.com/gottliebdinh/moggi-admin/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SessionModule,
	MailModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
