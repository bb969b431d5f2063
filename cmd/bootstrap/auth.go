package bootstrap

import (
	"roomhub/internal/pkg/authtoken"
	"roomhub/internal/pkg/config"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		func(cfg config.Config) *authtoken.Service {
			return authtoken.NewService(cfg.Auth.Secret)
		},
	),
)
