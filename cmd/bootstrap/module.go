package bootstrap

import (
	"roomhub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	AuthModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
