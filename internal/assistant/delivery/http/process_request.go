package http

import (
	"github.com/gin-gonic/gin"

	"fms-dashboard/internal/middleware"
	"fms-dashboard/internal/model"
)

func (h *handler) processScope(c *gin.Context) model.Scope {
	if sc, ok := middleware.GetScope(c.Request.Context()); ok {
		return sc
	}
	return middleware.ScopeFromHeaders(c.Request.Header.Get)
}

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
