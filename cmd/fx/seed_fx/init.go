package seed_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"astrasafe/internal/repositories"
	"astrasafe/internal/services"
)

var Module = fx.Provide(
	services.NewSeedService, provideSeedRepo)

func provideSeedRepo(db *gorm.DB) repositories.SeedRepository {
	return repositories.NewSeedRepository(db)
}
