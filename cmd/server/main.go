package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitrina/vitrina-backend/config"
	"github.com/vitrina/vitrina-backend/internal/app/controller"
	"github.com/vitrina/vitrina-backend/internal/app/repository"
	"github.com/vitrina/vitrina-backend/internal/app/service"
	"github.com/vitrina/vitrina-backend/internal/db"
	"github.com/vitrina/vitrina-backend/internal/middleware"
	"github.com/vitrina/vitrina-backend/internal/router"
	"github.com/vitrina/vitrina-backend/internal/scheduler"
	"github.com/vitrina/vitrina-backend/pkg/logger"
	"github.com/vitrina/vitrina-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting VITRINA Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize redis (token revocation works without it, logout becomes a no-op)
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, continuing without token revocation", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer redis.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	optionRepo := repository.NewOptionRepository(db.GetDB())
	variantRepo := repository.NewVariantRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	productService := service.NewProductService(productRepo)
	optionService := service.NewOptionService(optionRepo, productRepo)
	variantService := service.NewVariantService(db.GetDB(), productRepo, optionRepo, variantRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	optionController := controller.NewOptionController(optionService)
	variantController := controller.NewVariantController(variantService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Start the stock audit scheduler
	stockAudit := scheduler.NewStockAuditScheduler(variantService)
	if err := stockAudit.Start(); err != nil {
		logger.Error("Failed to start stock audit scheduler", err)
	}
	defer stockAudit.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		optionController,
		variantController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
