package httpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"task-portal/internal/middleware"
	"task-portal/internal/profile"
	"task-portal/internal/task"
	"task-portal/pkg/log"
)

// Pinger is a dependency checked by /ready.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Internal boundary
	middlewareConfig middleware.Config

	// Task domain
	taskUC     task.UseCase
	taskDriver string

	// Profile domain (optional, needs Postgres)
	profileUC profile.UseCase

	// Login notice
	loginAction string

	// Readiness
	dependencies map[string]Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set X-Forwarded-For / X-Real-IP. Empty trusts none,
	// so the client address is the connection's remote address.
	TrustedProxies []string

	Middleware middleware.Config

	TaskUseCase task.UseCase
	TaskDriver  string

	ProfileUseCase profile.UseCase

	LoginAction string

	// Dependencies are pinged by /ready, keyed by name.
	Dependencies map[string]Pinger
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		middlewareConfig: cfg.Middleware,
		taskUC:           cfg.TaskUseCase,
		taskDriver:       cfg.TaskDriver,
		profileUC:        cfg.ProfileUseCase,
		loginAction:      cfg.LoginAction,
		dependencies:     cfg.Dependencies,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.middlewareConfig.InternalKey == "" {
		return errors.New("internal key is required")
	}
	return nil
}
