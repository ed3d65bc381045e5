package router

import (
	"github.com/asifnewaz/blogsphere/backend/internal/handlers"
	"github.com/asifnewaz/blogsphere/backend/internal/middleware"
	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/services"
	"github.com/asifnewaz/blogsphere/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, logger *zap.Logger) error {
	// AutoMigrate models
	err := db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Media{},
		&models.Notification{},
		&models.Report{},
	)
	if err != nil {
		return err
	}
	logger.Info("auto-migrations completed for all models")

	// Health check and static uploads - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.Static("/uploads", cfg.UploadDir)

	// --- Initialize Services ---
	notificationService := services.NewNotificationService(db, logger)
	interactionService := services.NewInteractionService(db, notificationService)
	followService := services.NewFollowService(db, notificationService)
	feedService := services.NewFeedService(db, followService)
	mediaService := services.NewMediaService(db, cfg.UploadDir, cfg.BaseURL, logger)
	blogService := services.NewBlogService(db, mediaService, feedService)
	cascadeService := services.NewCascadeService(db, mediaService, logger)
	reportService := services.NewReportService(db)
	userService := services.NewUserService(db, cfg.JWTSecret)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userService)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	blogHandler := handlers.NewBlogHandler(blogService, feedService, cascadeService)
	blogHandler.RegisterBlogRoutes(api)

	likeHandler := handlers.NewLikeHandler(interactionService)
	likeHandler.RegisterLikeRoutes(api)

	commentHandler := handlers.NewCommentHandler(interactionService)
	commentHandler.RegisterCommentRoutes(api)

	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)

	mediaHandler := handlers.NewMediaHandler(mediaService, blogService)
	mediaHandler.RegisterMediaRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	reportHandler := handlers.NewReportHandler(reportService)
	reportHandler.RegisterReportRoutes(api)

	userHandler := handlers.NewUserHandler(userService, cascadeService)
	userHandler.RegisterUserRoutes(api)

	logger.Info("all routes configured")
	return nil
}
