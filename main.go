package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/route-assist/app/config"
	"github.com/route-assist/app/controllers"
	"github.com/route-assist/app/services"
	"github.com/route-assist/internal/ocr"
	"github.com/route-assist/internal/store"
	"github.com/route-assist/routes"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	// 1. Load server configuration
	loadConfig()

	// 2. Initialize logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting Route Assist Service")

	// 3. Load domain configuration (route names, pipeline/OCR knobs)
	if err := config.Load(viper.GetString("config.path")); err != nil {
		logger.Fatal("Failed to load domain config", zap.Error(err))
	}

	// 4. Load the finalized delivery table, read-only for this process
	table, err := store.Load(viper.GetString("data.table_path"), logger)
	if err != nil {
		logger.Fatal("Failed to load finalized table", zap.Error(err))
	}

	// 5. Initialize services
	lookupService, err := services.NewLookupService(table, config.C.RouteNames,
		viper.GetInt("cache.size"), logger)
	if err != nil {
		logger.Fatal("Failed to initialize lookup service", zap.Error(err))
	}
	sessionService := services.NewSessionService(lookupService, logger)

	// 6. Initialize the recognition collaborator
	engine := ocr.NewHTTPEngine(viper.GetString("ocr.endpoint"), logger)
	labelReader := ocr.NewLabelReader(engine, config.C.OCR.CropFractions,
		config.C.OCR.Language, logger)

	// 7. Initialize controllers
	lookupController := controllers.NewLookupController(lookupService, logger)
	sessionController := controllers.NewSessionController(sessionService, lookupService, logger)
	scanController := controllers.NewScanController(labelReader, logger)

	// 8. Set up router and routes
	if getEnv("APP_ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, lookupController, sessionController, scanController)

	// 9. Start server
	port := viper.GetString("app.port")
	logger.Info("Route Assist Service listening",
		zap.String("port", port),
		zap.Int("records", table.Len()))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// loadConfig loads server-level configuration from file and env vars.
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("data.table_path", "data/deliveries.csv")
	viper.SetDefault("config.path", "config/routes.yaml")
	viper.SetDefault("cache.size", 1024)
	viper.SetDefault("ocr.endpoint", "http://localhost:8090/recognize")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}

// initLogger builds a structured logger for the current environment.
func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", "development")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
