package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"astrasafe/internal/config"
	"astrasafe/internal/persona"
	"astrasafe/internal/services"
)

var Module = fx.Provide(
	LoadCatalog,
	persona.NewEngine,
	services.NewQuizService)

// LoadCatalog reads the configured persona catalog file, or returns the built-in table.
func LoadCatalog(cfg *config.Config, logger *zap.Logger) (*persona.Catalog, error) {
	if cfg.PersonaCatalog == "" {
		return persona.DefaultCatalog(), nil
	}
	catalog, err := persona.LoadCatalogFile(cfg.PersonaCatalog)
	if err != nil {
		return nil, err
	}
	logger.Info("persona catalog loaded",
		zap.String("path", cfg.PersonaCatalog),
		zap.Strings("personas", catalog.BandNames()),
		zap.Int("cities", len(catalog.Cities())))
	return catalog, nil
}
