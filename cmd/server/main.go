package main

import (
	"github.com/devarafat/miniblog/backend/internal/router"
	"github.com/devarafat/miniblog/backend/pkg/cloudinary"
	"github.com/devarafat/miniblog/backend/pkg/config"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Initialize database connection (loads .env as a side effect)
	db, err := config.InitDB()
	if err != nil {
		logger.Sugar().Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()
	logger.Info("Successfully connected to MongoDB")

	cfg := config.Load()

	// Initialize Cloudinary for image hosting
	uploader, err := cloudinary.New(cfg.CloudinaryURL)
	if err != nil {
		logger.Sugar().Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Mongo.Database(cfg.DatabaseName), uploader, cfg.SessionSecret, logger)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
