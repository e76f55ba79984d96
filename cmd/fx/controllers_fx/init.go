package controllers_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"astrasafe/internal/api"
	"astrasafe/internal/api/controllers"
	"astrasafe/internal/config"
)

var Module = fx.Options(
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSeedController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideRouter))

func provideRouter(cfg *config.Config, p api.RouterParams) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	return api.NewRouter(p)
}
