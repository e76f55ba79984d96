package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"astrasafe/internal/config"
	"astrasafe/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.Invoke(registerSync),
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logger.New(cfg.LogLevel, cfg.GinMode == "debug")
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

func registerSync(lc fx.Lifecycle, l *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stderr sync returns EINVAL on some platforms.
			_ = l.Sync()
			return nil
		},
	})
}
