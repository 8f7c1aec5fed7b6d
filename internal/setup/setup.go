package setup

import (
	"context"
	"time"

	"github.com/hatchr/hatchr/internal/database"
	"github.com/hatchr/hatchr/internal/notify"
	"github.com/hatchr/hatchr/internal/redis"
	"github.com/hatchr/hatchr/internal/setup/config"
	"github.com/hatchr/hatchr/internal/setup/logging"
	"go.uber.org/zap"
)

// App bundles all core dependencies and services needed by the application.
// Each field represents a major subsystem that needs initialization and cleanup.
type App struct {
	Config       *config.Config    // Application configuration
	Logger       *zap.Logger       // Main application logger
	DBLogger     *zap.Logger       // Database-specific logger
	DB           database.Client   // Database connection pool
	RedisManager *redis.Manager    // Redis connection manager
	Notifier     *notify.Publisher // Engagement notification publisher
	pprofServer  *pprofServer      // Debug HTTP server for pprof
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, logDir string) (*App, error) {
	// Load app configuration
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, dbLogger, err := logging.SetupLogging(logDir, cfg.Debug.LogLevel, cfg.Debug.MaxLogsToKeep)
	if err != nil {
		return nil, err
	}

	// Redis manager provides connection pools for various subsystems
	redisManager := redis.NewManager(&cfg.Redis, logger)

	// Notification publisher pushes engagement events to content owners
	notifyClient, err := redisManager.GetClient(redis.NotificationDBIndex)
	if err != nil {
		return nil, err
	}
	notifier := notify.NewPublisher(notifyClient, logger)

	// Initialize database with migrations
	db, err := database.NewConnection(ctx, &cfg.PostgreSQL, &cfg.Points, notifier, dbLogger, true)
	if err != nil {
		return nil, err
	}

	// Start pprof server if enabled
	var pprofSrv *pprofServer

	if cfg.Debug.EnablePprof {
		srv, err := startPprofServer(cfg.Debug.PprofPort, logger)
		if err != nil {
			logger.Error("Failed to start pprof server", zap.Error(err))
		} else {
			pprofSrv = srv

			logger.Warn("pprof debugging endpoint enabled - this should not be used in production!")
		}
	}

	return &App{
		Config:       cfg,
		Logger:       logger,
		DBLogger:     dbLogger,
		DB:           db,
		RedisManager: redisManager,
		Notifier:     notifier,
		pprofServer:  pprofSrv,
	}, nil
}

// Cleanup releases all resources in reverse initialization order.
func (a *App) Cleanup(ctx context.Context) {
	if a.pprofServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := a.pprofServer.stop(shutdownCtx); err != nil {
			a.Logger.Error("Failed to stop pprof server", zap.Error(err))
		}
	}

	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Failed to close database connection", zap.Error(err))
	}

	a.RedisManager.Close()

	_ = a.Logger.Sync()
	_ = a.DBLogger.Sync()
}
