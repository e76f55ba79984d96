package places_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"astrasafe/internal/config"
	"astrasafe/internal/models/response_models"
	"astrasafe/internal/repositories"
	"astrasafe/internal/services"
	mem "astrasafe/pkg/memcache"
)

var Module = fx.Provide(
	providePlaceService, providePlaceRepo)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository, cache mem.Store[[]response_models.Place], cfg *config.Config, logger *zap.Logger) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, cache, cfg.PlaceCacheTTL(), logger)
}
