package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"fms-dashboard/internal/assistant"
	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/middleware"
	"fms-dashboard/pkg/log"
)

const (
	EnvironmentProduction = "production"

	shutdownTimeout = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string
	rateLimit      middleware.RateLimitConfig
	storeDriver    string
	timezone       string

	// Dashboard domain
	dashboardUC dashboard.UseCase

	// Assistant domain, optional
	assistantUC assistant.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string
	RateLimit      middleware.RateLimitConfig
	StoreDriver    string
	Timezone       string

	DashboardUC dashboard.UseCase
	AssistantUC assistant.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	engine.Use(gin.Logger())

	srv := &HTTPServer{
		l:              logger,
		gin:            engine,
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		rateLimit:      cfg.RateLimit,
		storeDriver:    cfg.StoreDriver,
		timezone:       cfg.Timezone,
		dashboardUC:    cfg.DashboardUC,
		assistantUC:    cfg.AssistantUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
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
	if srv.dashboardUC == nil {
		return errors.New("dashboard use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
