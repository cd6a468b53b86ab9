package router

import (
	"github.com/devarafat/miniblog/backend/internal/handlers"
	"github.com/devarafat/miniblog/backend/internal/middleware"
	"github.com/devarafat/miniblog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *mongo.Database, uploader handlers.MediaUploader, sessionSecret string, logger *zap.Logger) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	sessionAuth := middleware.SessionAuth(sessionSecret)

	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	commentRepo := repositories.NewMongoCommentRepository(db)

	authHandler := handlers.NewAuthHandler(userRepo, sessionSecret)
	authHandler.RegisterAuthRoutes(e, sessionAuth)

	followHandler := handlers.NewFollowHandler(userRepo)
	followHandler.RegisterFollowRoutes(e, sessionAuth)

	postHandler := handlers.NewPostHandler(postRepo, uploader)
	postHandler.RegisterPostRoutes(e, sessionAuth)

	feedHandler := handlers.NewFeedHandler(postRepo, userRepo)
	feedHandler.RegisterFeedRoutes(e, sessionAuth)

	commentHandler := handlers.NewCommentHandler(commentRepo)
	commentHandler.RegisterCommentRoutes(e, sessionAuth)

	likeHandler := handlers.NewLikeHandler(postRepo)
	likeHandler.RegisterLikeRoutes(e, sessionAuth)

	logger.Info("All routes configured")
}
