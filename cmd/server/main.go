package main

import (
	"log"
	"os"

	"gestman-backend/internal/api/routes"
	"gestman-backend/internal/config"
	"gestman-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "gestman-backend/docs" // This is needed for swag
)

//	@title			GESTMAN Backend API
//	@version		1.0
//	@description	Backend API for GESTMAN maintenance management: locations and assets, recurring maintenance schedules, alerts with chat notifications, spare-part inventory, dynamic forms and reports.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize databases
	refDB, err := database.InitializeReference(cfg.ReferenceDatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize reference database:", err)
	}
	opsDB, err := database.InitializeOperational(cfg.OperationalDatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize operational database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(refDB, opsDB, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithField("timezone", cfg.Timezone).Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
