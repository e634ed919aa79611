package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"senso-backend/config"
	"senso-backend/database"
	"senso-backend/handlers"
	"senso-backend/logging"
	"senso-backend/middlewares"
	"senso-backend/mqtt"
	"senso-backend/push"
	"senso-backend/redis"
	"senso-backend/services"
	"senso-backend/shadow"
	"senso-backend/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()
	logger := logging.NewLogger(cfg.LogLevel)

	// Initialize database
	db, err := database.NewDatabase(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize MQTT bus client
	busClient, err := mqtt.NewClient(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize MQTT client: %v", err)
	}
	defer busClient.Disconnect()

	// Shadow dispatch strategy (managed service or broadcast on the bus)
	dispatcher := shadow.NewDispatcher(cfg, busClient, redisClient, logger)

	// Push provider
	pusher := push.NewExpoClient(cfg.PushAPIURL, cfg.Timeout, logger)

	// Initialize services
	alertService := services.NewAlertService(db.DeviceRepo, db.UserRepo, db.NotificationRepo, pusher, logger)
	deviceService := services.NewDeviceService(db.DeviceRepo, db.HistoryRepo, dispatcher, logger)
	commandService := services.NewCommandService(dispatcher, logger)
	wifiService := services.NewWifiService(redisClient, logger)
	notificationService := services.NewNotificationService(db.NotificationRepo, logger)

	// Start the telemetry router
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	router := telemetry.NewRouter(busClient.Inbound(), db.DeviceRepo, db.HistoryRepo, alertService, redisClient, cfg.Timeout, logger)
	go router.Run(ctx)

	// Initialize handlers
	deviceHandler := handlers.NewDeviceHandler(deviceService, commandService)
	wifiHandler := handlers.NewWifiHandler(wifiService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Setup HTTP server
	e := setupRouter(cfg, deviceHandler, wifiHandler, notificationHandler)

	go func() {
		logger.Info("Starting HTTP server", "port", cfg.HTTPPort)
		if err := e.Start(":" + cfg.HTTPPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

func setupRouter(
	cfg *config.Config,
	deviceHandler *handlers.DeviceHandler,
	wifiHandler *handlers.WifiHandler,
	notificationHandler *handlers.NotificationHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/", handlers.HealthCheck)

	api := e.Group("/api")
	auth := middlewares.JWTAuth([]byte(cfg.JWTSecret))

	// Device status, history and commands (operator-facing)
	device := api.Group("/device", auth)
	device.GET("/:deviceId/status", deviceHandler.GetDeviceStatus)
	device.GET("/:deviceId/history", deviceHandler.GetDeviceHistory)
	device.POST("/:deviceId/scene", deviceHandler.SendSceneCommand)
	device.POST("/:deviceId/thresholds", deviceHandler.SendThresholdCommand)

	// WiFi provisioning handshake (device-facing, pre-credential)
	api.POST("/wifi/status", wifiHandler.UpdateWifiStatus)
	api.GET("/wifi/status/:deviceId", wifiHandler.GetWifiStatus)

	// Notifications (user-facing)
	notification := api.Group("/notification", auth)
	notification.GET("", notificationHandler.ListNotifications)
	notification.PUT("/:id/read", notificationHandler.MarkNotificationRead)
	notification.DELETE("/:id", notificationHandler.DeleteNotification)

	return e
}
