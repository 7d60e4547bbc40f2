package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sentinela-app/sentinela/internal/pkg/config"
	"github.com/sentinela-app/sentinela/internal/pkg/database"
	"github.com/sentinela-app/sentinela/internal/pkg/health"
	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/middleware"
	nrpkg "github.com/sentinela-app/sentinela/internal/pkg/newrelic"
	"github.com/sentinela-app/sentinela/services/sharing/gateway"
	"github.com/sentinela-app/sentinela/services/sharing/handler"
	"github.com/sentinela-app/sentinela/services/sharing/repository"
	"github.com/sentinela-app/sentinela/services/sharing/usecase"
)

func main() {
	appName := "sharing-service"
	configPath := "config/sharing.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize Redis client (rate limiting and resolve counters)
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize gateways to the alerts and location services
	alertsGW := gateway.NewAlertsGW(configs)
	locationGW := gateway.NewLocationGW(configs)

	// Initialize repository
	shareCache := repository.NewShareCache(redisClient)

	// Initialize usecase
	sharingUC := usecase.NewSharingUC(configs, alertsGW, locationGW, shareCache)

	// Initialize handlers
	sharingHandler := handler.NewHandler(sharingUC, redisClient, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize health service
	healthService := health.NewHealthService()
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	sharingHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
