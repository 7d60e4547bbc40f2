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
	"github.com/sentinela-app/sentinela/internal/pkg/nats"
	nrpkg "github.com/sentinela-app/sentinela/internal/pkg/newrelic"
	"github.com/sentinela-app/sentinela/internal/pkg/scheduler"
	"github.com/sentinela-app/sentinela/services/alerts/gateway"
	"github.com/sentinela-app/sentinela/services/alerts/handler"
	"github.com/sentinela-app/sentinela/services/alerts/repository"
	"github.com/sentinela-app/sentinela/services/alerts/usecase"
)

func main() {
	appName := "alerts-service"
	configPath := "config/alerts.env"
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

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize JetStream-enabled NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
	}
	defer natsClient.Close()

	if !natsClient.IsConnected() {
		zapLogger.Fatal("NATS JetStream client not connected")
	}

	// The alerts service owns the streams; other services only attach
	// consumers to them.
	streamCtx, streamCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := natsClient.EnsureStreams(streamCtx); err != nil {
		streamCancel()
		zapLogger.Fatal("Failed to ensure JetStream streams", logger.Err(err))
	}
	streamCancel()

	logger.Info("JetStream client initialized successfully",
		logger.String("url", configs.NATS.URL),
		logger.Bool("connected", natsClient.IsConnected()))

	// Initialize repositories
	alertRepo := repository.NewAlertRepository(configs, postgresClient.GetDB())
	tokenRepo := repository.NewTokenRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	alertGW := gateway.NewAlertGW(natsClient)

	// Initialize usecase
	alertUC := usecase.NewAlertUC(configs, alertRepo, tokenRepo, alertGW)

	// Initialize handlers
	alertHandler := handler.NewHandler(alertUC, natsClient, configs, nrApp)

	// Initialize NATS consumers
	if err := alertHandler.InitNATSConsumers(context.Background()); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Token garbage collection
	tokenGC := scheduler.NewScheduler()
	if err := tokenGC.AddJob(scheduler.Job{
		Name:     "token-gc",
		Schedule: configs.Tokens.GCSchedule,
		Run:      alertUC.SweepExpiredTokens,
	}); err != nil {
		zapLogger.Fatal("Failed to schedule token GC", logger.Err(err))
	}
	tokenGC.Start()

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize health service
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	alertHandler.RegisterRoutes(e)

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

	zapLogger.Info("Stopping token GC...")
	tokenGC.Stop()

	zapLogger.Info("Stopping NATS consumers...")
	alertHandler.Stop()

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
