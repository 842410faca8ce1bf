package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "fms-dashboard/internal/assistant/delivery/http"
	dashboardHTTP "fms-dashboard/internal/dashboard/delivery/http"
	"fms-dashboard/internal/middleware"
)

// setupDashboardDomain registers /api/v1/dashboard/*.
func (srv HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := dashboardHTTP.New(srv.l, srv.dashboardUC)
	dashboardHTTP.RegisterRoutes(api.Group("/dashboard"), h, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
	return nil
}

// setupAssistantDomain registers /api/v1/assistant/*.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
