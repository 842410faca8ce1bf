package http

import (
	"github.com/gin-gonic/gin"

	"fms-dashboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// resolves the caller scope from the request headers.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Scope())

	rg.GET("/projects", h.Projects)
	rg.GET("/stats", h.Stats)
	rg.GET("/counts", h.Counts)
	rg.GET("/team", h.Team)
	rg.GET("/company", h.Company)
	rg.GET("/developer", h.Developer)
	rg.POST("/assignments", h.Assign)
	rg.POST("/tasks/:task_no/complete", h.Complete)
	rg.GET("/report", h.Report)
	rg.GET("/report/export", h.Export)
	rg.POST("/evaluate", h.Evaluate)
}
