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

	"github.com/gin-gonic/gin"

	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/config"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/di"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/handler"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/internal/metrics"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/pkg/logger"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/pkg/middleware"
	"github.com/JuanLuisGozaloFdez/admin-event-ops-service/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: handler.ServiceName,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Admin Event Ops Service...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    handler.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	if err := metrics.Init(); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize metrics: %v", err))
	}

	// Build dependency injection container
	container := di.NewContainer()

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.CORS())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(handler.ServiceName))
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// Event operation routes
	events := router.Group("/events")
	{
		events.POST("", container.EventHandler.Create)
		events.GET("/admin/:adminId", container.EventHandler.ListByAdmin)
		events.GET("/reports/:reportId", container.ReportHandler.GetByID)

		// Wildcard routes go after the static segments above to avoid
		// catching /admin and /reports
		events.GET("/:eventId", container.EventHandler.GetByID)
		events.PUT("/:eventId", container.EventHandler.Update)
		events.PATCH("/:eventId/status", container.EventHandler.UpdateStatus)
		events.POST("/:eventId/ticket-sale", container.EventHandler.RecordTicketSale)
		events.GET("/:eventId/stats", container.StatsHandler.GetStats)
		events.GET("/:eventId/analytics", container.StatsHandler.GetAnalytics)
		events.POST("/:eventId/reports", container.ReportHandler.Generate)
		events.GET("/:eventId/reports", container.ReportHandler.ListByEvent)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Admin Event Ops Service listening on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}
