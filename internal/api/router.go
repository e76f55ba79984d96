package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"astrasafe/internal/api/controllers"
	"astrasafe/pkg/metrics"
	"astrasafe/pkg/middleware"
)

// RouterParams collects everything the HTTP surface is built from.
type RouterParams struct {
	fx.In

	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string `name:"cors_origins"`

	Quiz     *controllers.QuizController
	Places   *controllers.PlacesController
	Accounts *controllers.AccountController
	Seed     *controllers.SeedController
	Health   *controllers.HealthController
}

func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.MetricsMiddleware(p.Metrics))
	r.Use(middleware.CORSMiddleware(p.AllowedOrigins))

	RegisterRoutes(r, p)
	r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	quizGroup := r.Group("/quiz")
	quizGroup.POST("", p.Quiz.Classify)
	quizGroup.GET("/options", p.Quiz.Options)

	placesGroup := r.Group("/places")
	placesGroup.GET("", p.Places.ListPlaces)
	placesGroup.GET("/:id", p.Places.GetPlace)
	placesGroup.GET("/:id/reviews", p.Places.ListReviews)
	placesGroup.POST("/:id/reviews", p.Places.CreateReview)

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", p.Accounts.SignUp)

	r.POST("/seed", p.Seed.Seed)
	r.GET("/healthz", p.Health.Health)
}
