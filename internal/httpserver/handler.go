package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fms-dashboard/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS(srv.allowedOrigins))

	ctx := context.Background()
	if srv.environment == EnvironmentProduction && len(srv.allowedOrigins) == 0 {
		srv.l.Warnf(ctx, "CORS mode: production with no allowed origins, accepting any origin")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, %d allowed origin(s)", srv.environment, len(srv.allowedOrigins))
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1. Only API
// routes are rate limited.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	api.Use(mw.RateLimit())

	if err := srv.setupDashboardDomain(ctx, api, mw); err != nil {
		return err
	}

	if srv.assistantUC != nil {
		if err := srv.setupAssistantDomain(ctx, api, mw); err != nil {
			return err
		}
	} else {
		srv.l.Infof(ctx, "Assistant not configured, skipping /api/v1/assistant routes")
	}

	return nil
}
