package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/journal_app/internal/core/services"
	"github.com/SscSPs/journal_app/internal/handlers"
	"github.com/SscSPs/journal_app/internal/middleware"
	"github.com/SscSPs/journal_app/internal/platform/config"
	"github.com/SscSPs/journal_app/internal/repositories/storage"
	"github.com/gin-gonic/gin"
)

// @title Journal Backend API
// @version 1.0
// @description Password-gated upload of daily journal entries rendered as PDF.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The storage client is built once and shared by every request
	repos, err := storage.NewRepositoryProvider(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize object storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Object storage ready", slog.String("driver", cfg.StorageDriver), slog.String("bucket", cfg.S3BucketName))

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
