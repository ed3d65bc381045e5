package main

import (
	"log"

	"github.com/asifnewaz/blogsphere/backend/internal/router"
	"github.com/asifnewaz/blogsphere/backend/internal/validators"
	"github.com/asifnewaz/blogsphere/backend/pkg/config"
	"github.com/asifnewaz/blogsphere/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logger
	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, cfg, zlog); err != nil {
		zlog.Fatal("failed to set up routes", zap.Error(err))
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
