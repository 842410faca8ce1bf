package http

import (
	"github.com/gin-gonic/gin"

	"fms-dashboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Scope())

	rg.POST("/chat", h.Chat)
}
