package db_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"astrasafe/internal/api/controllers"
	"astrasafe/internal/config"
	"astrasafe/internal/infra"
)

const connectTimeout = 15 * time.Second

var Module = fx.Provide(
	provideDB,
	providePinger)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := infra.InitPostgresql(ctx, cfg, logger.Named("postgres"))
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return infra.ClosePostgresql(db, logger.Named("postgres"))
		},
	})
	return db, nil
}

func providePinger(db *gorm.DB) (controllers.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return sqlDB, nil
}
