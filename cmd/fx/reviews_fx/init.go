package reviews_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"astrasafe/internal/repositories"
	"astrasafe/internal/services"
)

var Module = fx.Provide(
	services.NewReviewService, provideReviewRepo)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}
