package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // zoneinfo for minimal images

	"fms-dashboard/config"
	_ "fms-dashboard/docs" // Swagger docs
	"fms-dashboard/internal/assistant"
	assistantUC "fms-dashboard/internal/assistant/usecase"
	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/dashboard/repository/postgrest"
	"fms-dashboard/internal/dashboard/repository/sqlite"
	dashboardUC "fms-dashboard/internal/dashboard/usecase"
	"fms-dashboard/internal/httpserver"
	"fms-dashboard/internal/middleware"
	"fms-dashboard/internal/stage"
	"fms-dashboard/internal/timespent"
	"fms-dashboard/pkg/llmprovider"
	"fms-dashboard/pkg/log"
	"fms-dashboard/pkg/trace"
)

// @title       FMS Dashboard API
// @description Task-tracking dashboard: stage classification, working-hours time spent, reports and an LLM assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FMS dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Core: calendar, classifier, time-spent calculator
	calendar, err := cfg.Dashboard.Calendar()
	if err != nil {
		logger.Errorf(ctx, "Invalid dashboard calendar: %v", err)
		return
	}

	var hook trace.Hook
	if cfg.Logger.Level == "debug" {
		hook = trace.LoggerHook(logger)
	}
	calc := timespent.New(calendar, hook)
	classifier := stage.Classifier{Hook: hook}

	// 4. Task store
	repo, closeStore, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open task store: %v", err)
		return
	}
	defer closeStore()

	// 5. Dashboard domain
	teamCache := dashboardUC.NewTeamCache(cfg.TeamCache.Size, cfg.TeamCache.TTL)
	dashboard := dashboardUC.New(logger, repo, calc, classifier, calendar.Parser(), teamCache)

	// 6. Assistant domain (optional)
	var chat assistant.UseCase
	if cfg.Assistant.Enabled {
		providers, pErr := llmprovider.InitializeProviders(ctx, &cfg.Assistant, logger)
		if pErr != nil {
			logger.Warnf(ctx, "Assistant disabled: %v", pErr)
		} else {
			manager := llmprovider.NewManager(providers, &llmprovider.Config{
				FallbackEnabled: cfg.Assistant.FallbackEnabled,
				RetryAttempts:   cfg.Assistant.RetryAttempts,
				RetryDelay:      cfg.Assistant.RetryDelay,
				MaxTotalTimeout: cfg.Assistant.MaxTotalTimeout,
			}, logger)
			chat = assistantUC.New(logger, manager)
			logger.Infof(ctx, "Assistant providers: %v", manager.Providers())
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		RateLimit: middleware.RateLimitConfig{
			PerMin:     cfg.RateLimit.PerMin,
			MaxClients: cfg.RateLimit.MaxClients,
		},
		StoreDriver: cfg.Store.Driver,
		Timezone:    cfg.Dashboard.Timezone,
		DashboardUC: dashboard,
		AssistantUC: chat,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openStore builds the repository for the configured driver. The returned
// func releases the underlying connection.
func openStore(ctx context.Context, cfg config.StoreConfig, logger log.Logger) (repository.Repository, func(), error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof(ctx, "Task store: sqlite at %s", cfg.SQLite.Path)
		return sqlite.New(db, logger), closer(ctx, db, logger), nil

	default:
		client := postgrest.NewClient(cfg.PostgREST.URL, cfg.PostgREST.APIKey, cfg.PostgREST.Schema, cfg.PostgREST.Timeout)
		logger.Infof(ctx, "Task store: postgrest at %s", cfg.PostgREST.URL)
		return postgrest.New(client, logger), func() {}, nil
	}
}

func closer(ctx context.Context, db *sql.DB, logger log.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warnf(ctx, "close sqlite: %v", err)
		}
	}
}
