package bootstrap

import (
	"stokship/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.SchedulerModule,
	components.HandlerModule,
)
