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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/avamus/visionboard/pkg/validator"

	"github.com/avamus/visionboard/internal/adapter/handler"
	"github.com/avamus/visionboard/internal/adapter/repository"
	"github.com/avamus/visionboard/internal/infrastructure/cache"
	"github.com/avamus/visionboard/internal/infrastructure/database"
	"github.com/avamus/visionboard/internal/infrastructure/storage"
	calllogUsecase "github.com/avamus/visionboard/internal/usecase/calllog"
	"github.com/avamus/visionboard/internal/usecase/viewstate"
	"github.com/avamus/visionboard/pkg/config"
)

// @title           Vision Board API
// @version         1.0
// @description     Sales call analytics dashboard: call log store, score trend charts and per-session view state

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply SQL migrations at boot only when explicitly enabled.
	// Production deployments should run the migrate command in CI/CD.
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping boot-time migrations; run cmd/migrate in CI/CD/production")
	}

	// Initialize call list cache
	var callListCache calllogUsecase.CallListCache
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		callListCache = cache.NewRedisCallListCache(redisClient, cfg.Redis.CallsTTL, logger)
	} else {
		log.Println("📦 Redis disabled, using in-memory call list cache")
		callListCache = cache.NewMemoryCallListCache(cfg.Redis.CallsTTL)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	callLogRepo := repository.NewCallLogRepository(db)

	// Initialize call log service
	log.Println("📞 Initializing call log service...")
	callLogService := calllogUsecase.NewCallLogService(callLogRepo, callListCache, logger)

	// Initialize view-state session manager
	log.Println("🗂  Initializing session manager...")
	sessionManager := viewstate.NewManager(cfg.Dashboard.SessionTTL, cfg.Dashboard.SavedFlagTTL)

	// Initialize recording storage
	var recordingHandler *handler.Recording
	if cfg.Storage.Enabled {
		log.Println("🎙  Initializing recording storage...")
		recordingStore, err := storage.NewRecordingStore(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize recording storage: %v", err)
		}
		recordingHandler = handler.NewRecordingHandler(recordingStore, logger)
	} else {
		log.Println("⚠️  Recording storage disabled; recording uploads unavailable")
	}

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	dashboardHandler := handler.NewDashboardHandler(callLogService, logger)
	chartsHandler := handler.NewChartsHandler(callLogService, cfg.Dashboard.RecordsPerPage, logger)
	sessionHandler := handler.NewSessionHandler(sessionManager, callLogService, cfg.Dashboard.RecordsPerPage, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, dashboardHandler, chartsHandler, sessionHandler, recordingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
