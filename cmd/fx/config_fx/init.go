package config_fx

import (
	"go.uber.org/fx"

	"astrasafe/internal/config"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(fx.Annotate(provideAllowedOrigins, fx.ResultTags(`name:"cors_origins"`))),
)

func provideAllowedOrigins(cfg *config.Config) []string {
	return cfg.AllowedOrigins()
}
