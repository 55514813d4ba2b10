package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/adapter/cache"
	"github.com/seu-repo/moto-frota/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/moto-frota/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/moto-frota/internal/adapter/queue"
	"github.com/seu-repo/moto-frota/internal/adapter/storage/postgres"
	"github.com/seu-repo/moto-frota/internal/adapter/vault"
	wsAdapter "github.com/seu-repo/moto-frota/internal/adapter/websocket"
	"github.com/seu-repo/moto-frota/internal/observability/telemetry"
	"github.com/seu-repo/moto-frota/internal/ports"
	"github.com/seu-repo/moto-frota/internal/service/alert"
	"github.com/seu-repo/moto-frota/internal/service/analysis"
	"github.com/seu-repo/moto-frota/internal/service/auth"
	"github.com/seu-repo/moto-frota/internal/service/email"
	"github.com/seu-repo/moto-frota/internal/service/maintenance"
	"github.com/seu-repo/moto-frota/internal/service/metric"
	"github.com/seu-repo/moto-frota/internal/service/reporting"
	"github.com/seu-repo/moto-frota/internal/service/vehicle"
	"github.com/seu-repo/moto-frota/pkg/config"
)

const (
	serviceName    = "moto-frota"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting Moto Frota",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Resolve secrets from Vault when enabled
	if cfg.Vault.Enabled {
		sm, err := vault.NewSecretManager(cfg.Vault.Address, cfg.Vault.Token)
		if err != nil {
			logger.Fatal("Failed to connect to Vault", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if url, err := sm.GetDatabaseURL(ctx); err == nil && url != "" {
			cfg.Database.URL = url
		}
		if secret, err := sm.GetJWTSecret(ctx); err == nil && secret != "" {
			cfg.JWT.Secret = secret
		}
		cancel()
	}

	// 4. Initialize OpenTelemetry (Distributed Tracing)
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 5. Initialize PostgreSQL Connection Pool
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 6. Initialize Cache (Redis, in-memory fallback)
	var appCache ports.Cache
	appCache, err = cache.NewRedisCache(cfg.Redis.URL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory cache", zap.Error(err))
		appCache = cache.NewLocalCache(cfg.Cache.CleanupEvery, logger)
	}
	defer appCache.Close()

	// 7. Initialize Message Queue
	var messageQueue queue.MessageQueue
	switch cfg.Queue.Driver {
	case "nats":
		messageQueue, err = queue.NewNATSQueue(cfg.Queue.NATSURL, logger)
	case "rabbitmq":
		messageQueue, err = queue.NewRabbitMQQueue(cfg.Queue.RabbitMQURL, logger)
	default:
		logger.Info("No message queue configured, events disabled")
	}
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.Error(err))
	}
	if messageQueue != nil {
		defer messageQueue.Close()
	}

	// 8. Initialize Repositories
	vehicleRepo := postgres.NewVehicleRepository(db, logger)
	maintenanceRepo := postgres.NewMaintenanceRepository(db, logger)
	analysisRepo := postgres.NewAnalysisRepository(db, logger)
	metricRepo := postgres.NewMetricRepository(db, logger)
	alertRepo := postgres.NewAlertRepository(db, logger)
	userRepo := postgres.NewUserRepository(db, logger)

	// 9. Initialize WebSocket Hub (alert push)
	wsHub := wsAdapter.NewHub()
	go wsHub.Run()

	// 10. Initialize Email Service
	var emailService ports.EmailService
	if cfg.Notification.Email.Provider != "" {
		emailService, err = email.NewService(&email.Config{
			Provider:       cfg.Notification.Email.Provider,
			FromEmail:      cfg.Notification.Email.From,
			FromName:       cfg.Notification.Email.FromName,
			SendGridAPIKey: cfg.Notification.Email.APIKey,
			SMTPHost:       cfg.Notification.Email.SMTPHost,
			SMTPPort:       cfg.Notification.Email.SMTPPort,
			BaseURL:        cfg.Notification.Email.BaseURL,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize email service", zap.Error(err))
		}
	}

	// 11. Initialize Services (Business Logic Layer)
	authService := auth.NewService(userRepo, appCache, cfg.JWT.Secret, logger)
	vehicleService := vehicle.NewService(vehicleRepo, appCache, messageQueue, logger)
	maintenanceService := maintenance.NewService(maintenanceRepo, vehicleRepo, messageQueue, logger)
	analysisService := analysis.NewService(analysisRepo, vehicleRepo, logger)
	metricService := metric.NewService(metricRepo, vehicleRepo, logger)
	reportingService := reporting.NewService(vehicleRepo, maintenanceRepo, alertRepo, logger)
	alertService := alert.NewService(alertRepo, userRepo, wsHub, messageQueue, emailService, logger)

	// 12. Start Alert Worker
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	if cfg.Alerts.Enabled {
		worker := alert.NewWorker(alertService, userRepo, reportingService, messageQueue, cfg.Alerts.ScanInterval, logger)
		if err := worker.Start(workerCtx); err != nil {
			logger.Fatal("Failed to start alert worker", zap.Error(err))
		}
	}

	// 13. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	if cfg.CORS.Enabled {
		app.Use(middleware.NewCORS(cfg.CORS))
	} else {
		app.Use(middleware.DefaultCORS())
	}
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	// Health Check Endpoints
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := sqlDB.Ping(); err != nil {
			return c.Status(503).SendString("Database not ready")
		}
		if err := appCache.Ping(); err != nil {
			return c.Status(503).SendString("Cache not ready")
		}
		return c.SendString("Ready")
	})

	// Metrics endpoint for Prometheus
	app.Get(cfg.Prometheus.Path, func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API v1 Routes
	v1 := app.Group("/api/v1")

	// Auth routes (public)
	authHandler := handlers.NewAuthHandler(authService, logger)
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/register", authHandler.Register)
	v1.Post("/auth/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("", middleware.AuthRequired(authService))
	protected.Get("/auth/me", authHandler.Me)

	// Vehicle routes
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, logger)
	protected.Post("/vehicles", vehicleHandler.Create)
	protected.Get("/vehicles", vehicleHandler.List)
	protected.Get("/vehicles/search", vehicleHandler.Search)
	protected.Get("/vehicles/brands", vehicleHandler.BrandStats)
	protected.Get("/vehicles/:id", vehicleHandler.Get)
	protected.Put("/vehicles/:id", vehicleHandler.Update)
	protected.Patch("/vehicles/:id/odometer", vehicleHandler.UpdateOdometer)
	protected.Delete("/vehicles/:id", vehicleHandler.Delete)

	// Maintenance routes
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService, logger)
	protected.Post("/maintenances", maintenanceHandler.Create)
	protected.Get("/maintenances", maintenanceHandler.List)
	protected.Get("/maintenances/:id", maintenanceHandler.Get)
	protected.Put("/maintenances/:id", maintenanceHandler.Update)
	protected.Delete("/maintenances/:id", maintenanceHandler.Delete)
	protected.Get("/vehicles/:id/maintenances", maintenanceHandler.ListByVehicle)
	protected.Post("/maintenances/:id/items", maintenanceHandler.AddLineItem)
	protected.Get("/maintenances/:id/items", maintenanceHandler.ListLineItems)
	protected.Put("/maintenances/:id/items/:itemId", maintenanceHandler.UpdateLineItem)
	protected.Delete("/maintenances/:id/items/:itemId", maintenanceHandler.RemoveLineItem)

	// Technical analysis routes
	analysisHandler := handlers.NewAnalysisHandler(analysisService, logger)
	protected.Post("/analyses", analysisHandler.Create)
	protected.Get("/analyses", analysisHandler.List)
	protected.Get("/analyses/recent", analysisHandler.Recent)
	protected.Get("/analyses/:id", analysisHandler.Get)
	protected.Put("/analyses/:id", analysisHandler.Update)
	protected.Delete("/analyses/:id", analysisHandler.Delete)
	protected.Get("/vehicles/:id/analyses", analysisHandler.ListByVehicle)

	// Reporting routes
	reportHandler := handlers.NewReportHandler(reportingService, logger)
	protected.Get("/dashboard", reportHandler.Dashboard)
	protected.Get("/reports/monthly-spend", reportHandler.MonthlySpend)
	protected.Get("/reports/spend-by-vehicle", reportHandler.SpendByVehicle)
	protected.Get("/reports/spend-by-category", reportHandler.SpendByCategory)
	protected.Get("/reports/next-maintenances", reportHandler.NextMaintenances)

	// Alert routes
	alertHandler := handlers.NewAlertHandler(alertService, logger)
	protected.Post("/alerts", alertHandler.Create)
	protected.Get("/alerts", alertHandler.List)
	protected.Get("/alerts/count", alertHandler.CountOpen)
	protected.Get("/alerts/:id", alertHandler.Get)
	protected.Patch("/alerts/:id/read", alertHandler.MarkRead)
	protected.Patch("/alerts/:id/resolve", alertHandler.Resolve)
	protected.Patch("/alerts/:id/dismiss", alertHandler.Dismiss)

	// Metric routes (admin)
	metricHandler := handlers.NewMetricHandler(metricService, logger)
	admin := protected.Group("", middleware.AdminOnly())
	admin.Post("/metrics-catalog", metricHandler.Create)
	admin.Put("/metrics-catalog/:id", metricHandler.Update)
	protected.Get("/metrics-catalog", metricHandler.List)
	protected.Get("/metrics-catalog/:id", metricHandler.Get)
	protected.Post("/metrics-catalog/:id/values", metricHandler.RecordValue)
	protected.Get("/metrics-catalog/:id/values", metricHandler.ListValues)

	// WebSocket routes
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// Alert push WebSocket. The browser cannot set headers on the upgrade
	// request, so the token travels as a query param.
	app.Get("/ws/alerts", websocket.New(func(c *websocket.Conn) {
		token := c.Query("token")
		user, err := authService.ValidateToken(context.Background(), token)
		if err != nil || user == nil {
			c.WriteMessage(websocket.CloseMessage, []byte{})
			c.Close()
			return
		}
		wsHub.AddClient(c, user.ID)
	}))

	// 14. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 15. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	workerCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
