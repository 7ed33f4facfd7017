package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"task-portal/config"
	_ "task-portal/docs" // Swagger docs
	"task-portal/internal/httpserver"
	"task-portal/internal/middleware"
	"task-portal/internal/profile"
	profileRepo "task-portal/internal/profile/repository/postgre"
	profileUC "task-portal/internal/profile/usecase"
	"task-portal/internal/task/repository"
	"task-portal/internal/task/repository/gtasks"
	memosRepo "task-portal/internal/task/repository/memos"
	taskPostgre "task-portal/internal/task/repository/postgre"
	taskUC "task-portal/internal/task/usecase"
	"task-portal/pkg/log"
	"task-portal/pkg/postgres"
)

// @title       Task Portal API
// @description Internal task creation, login notice and user profiles.
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

	logger.Info(ctx, "Starting Task Portal...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task store: %s", cfg.TaskStore.Driver)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Server exited with error: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	deps := map[string]httpserver.Pinger{}

	// 3. Postgres (optional unless it is the task store)
	var pool *pgxpool.Pool
	if cfg.Postgres.Enabled() {
		var err error
		pool, err = postgres.Connect(ctx, postgres.Config{
			Host:              cfg.Postgres.Host,
			Port:              cfg.Postgres.Port,
			User:              cfg.Postgres.User,
			Password:          cfg.Postgres.Password,
			DBName:            cfg.Postgres.DBName,
			SSLMode:           cfg.Postgres.SSLMode,
			MaxConns:          cfg.Postgres.MaxConns,
			MinConns:          cfg.Postgres.MinConns,
			MaxConnLifetime:   cfg.Postgres.MaxConnLifetime,
			MaxConnIdleTime:   cfg.Postgres.MaxConnIdleTime,
			HealthCheckPeriod: cfg.Postgres.HealthCheckPeriod,
		})
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		deps["postgres"] = pool
		logger.Info(ctx, "Postgres connected")
	}

	// 4. Task store
	taskRepo, err := newTaskRepository(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	deps["task_store"] = taskRepo

	// 5. Use cases
	taskUseCase := taskUC.New(logger, taskRepo, cfg.TaskStore.Driver)

	var profileUseCase profile.UseCase
	if pool != nil {
		profileUseCase = profileUC.New(logger, profileRepo.New(pool, logger), profileUC.CacheConfig{
			Size: cfg.ProfileCache.Size,
			TTL:  cfg.ProfileCache.TTL,
		})
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			InternalKey:     cfg.InternalAuth.Key,
			AllowedIPs:      cfg.InternalAuth.AllowedIPs,
			RateLimitPerMin: cfg.InternalAuth.RateLimitPerMin,
		},
		TaskUseCase:    taskUseCase,
		TaskDriver:     cfg.TaskStore.Driver,
		ProfileUseCase: profileUseCase,
		LoginAction:    cfg.Login.ActionURL,
		Dependencies:   deps,
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// 7. Run
	return httpServer.Run(ctx)
}

func newTaskRepository(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger log.Logger) (repository.TaskRepository, error) {
	switch cfg.TaskStore.Driver {
	case config.DriverMemos:
		client := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken)
		return memosRepo.New(client, cfg.Memos.ExternalURL, cfg.Memos.Visibility, logger), nil
	case config.DriverPostgres:
		return taskPostgre.New(pool, logger), nil
	case config.DriverGoogleTasks:
		svc, err := gtasks.NewService(ctx, cfg.GoogleTasks.CredentialsPath, cfg.GoogleTasks.TokenPath)
		if err != nil {
			return nil, fmt.Errorf("google tasks: %w", err)
		}
		return gtasks.New(svc, cfg.GoogleTasks.ListID, logger), nil
	}
	return nil, fmt.Errorf("unknown task store driver %q", cfg.TaskStore.Driver)
}
