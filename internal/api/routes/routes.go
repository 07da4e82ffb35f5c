package routes

import (
	"players-api/internal/api/handlers"
	"players-api/internal/api/middleware"
	"players-api/internal/cache"
	"players-api/internal/config"
	"players-api/internal/metrics"
	"players-api/internal/repository"
	"players-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. Metrics are
// registered on reg and served from /metrics.
func SetupRoutes(db *gorm.DB, cfg *config.Config, reg *prometheus.Registry) *gin.Engine {
	// Create router
	router := gin.New()

	appMetrics := metrics.NewService(reg)

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(appMetrics))

	// Initialize validator
	validator := validator.New()

	// One cache per process, shared by every request
	responses := cache.New[[]service.PlayerResponse]()

	playerRepo := repository.NewPlayerRepository(db)
	playerService := service.NewPlayerService(playerRepo, validator, appMetrics)

	healthHandler := handlers.NewHealthHandler(db)
	playerHandler := handlers.NewPlayerHandler(playerService, responses, appMetrics, cfg.CacheTTL())

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(metrics.NewMetricsHandler(reg)))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	players := router.Group("/players")
	{
		players.POST("/", playerHandler.CreatePlayer)
		players.GET("/", playerHandler.ListPlayers)
		players.GET("/:id", playerHandler.GetPlayer)
		players.GET("/squadnumber/:squad_number", playerHandler.GetPlayerBySquadNumber)
		players.PUT("/:id", playerHandler.UpdatePlayer)
		players.DELETE("/:id", playerHandler.DeletePlayer)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
