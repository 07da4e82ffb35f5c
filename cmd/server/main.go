package main

import (
	"os"

	"players-api/internal/api/routes"
	"players-api/internal/config"
	"players-api/internal/database"
	"players-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	_ "players-api/docs" // This is needed for swag
)

//	@title			Players API
//	@version		1.0
//	@description	CRUD over the players of the 2022 World Cup squad, looked up by id or squad number.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:9000
//	@BasePath	/

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel: database.ParseLogLevel(cfg.DBLogLevel),
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close(db)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize router
	router := routes.SetupRoutes(db, cfg, reg)

	logrus.WithFields(logrus.Fields{
		"port":      cfg.Port,
		"postgres":  database.IsPostgres(cfg.DatabaseURL),
		"cache_ttl": cfg.CacheTTL().String(),
	}).Info("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
