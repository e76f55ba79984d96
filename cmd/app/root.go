package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"astrasafe/cmd/fx/account_fx"
	"astrasafe/cmd/fx/config_fx"
	"astrasafe/cmd/fx/db_fx"
	"astrasafe/cmd/fx/logger_fx"
	"astrasafe/cmd/fx/memcache_fx"
	"astrasafe/cmd/fx/metrics_fx"
	"astrasafe/cmd/fx/places_fx"
	"astrasafe/cmd/fx/reviews_fx"
	"astrasafe/cmd/fx/seed_fx"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "astrasafe",
		Short: "Safety-first travel planning backend",
		Long: `AstraSafe classifies travelers into safety personas, recommends cities
and serves the community place directory.

Configuration is read from ASTRASAFE_* environment variables, an optional
.env file and the YAML file named by ASTRASAFE_CONFIG.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newSeedCmd(), newQuizCmd())
	return root
}

// coreModules wires configuration, logging, storage and the domain services.
func coreModules() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		places_fx.Module,
		reviews_fx.Module,
		account_fx.Module,
		seed_fx.Module,
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
	)
}
