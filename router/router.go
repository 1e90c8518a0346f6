package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/codeby-aftab/trip-ai-backend/config"
	"github.com/codeby-aftab/trip-ai-backend/handlers"
	"github.com/codeby-aftab/trip-ai-backend/middleware"
)

// Dependencies holds everything required to set up the routes.
type Dependencies struct {
	Config        *config.Config
	PlanHandler   *handlers.PlanHandler
	UserHandler   *handlers.UserHandler
	HealthHandler *handlers.HealthHandler
	Logger        *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(&deps.Config.Server))

	// Health and metrics routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Versioned API group (v1)
	v1 := r.Group("/v1")
	{
		// Plan generation and display-currency routes
		planRoutes := v1.Group("/plans")
		{
			planRoutes.POST("/generate", deps.PlanHandler.GeneratePlansHandler)
			planRoutes.POST("/format", deps.PlanHandler.FormatAmountHandler)
		}

		v1.GET("/currencies", deps.PlanHandler.ListCurrenciesHandler)
		v1.GET("/destinations", deps.PlanHandler.ListDestinationsHandler)
		v1.GET("/rates", deps.PlanHandler.GetRatesHandler)
		v1.POST("/rates/refresh", deps.PlanHandler.RefreshRatesHandler)

		// Account and saved-trip routes
		userRoutes := v1.Group("/users/:id")
		{
			userRoutes.POST("/login", deps.UserHandler.LoginHandler)
			userRoutes.POST("/logout", deps.UserHandler.LogoutHandler)
			userRoutes.GET("/profile", deps.UserHandler.GetProfileHandler)
			userRoutes.PUT("/profile", deps.UserHandler.UpdateProfileHandler)
			userRoutes.GET("/trips", deps.UserHandler.ListTripsHandler)
			userRoutes.POST("/trips", deps.UserHandler.SaveTripHandler)
			userRoutes.DELETE("/trips", deps.UserHandler.DeleteTripHandler)
		}
	}

	return r
}
