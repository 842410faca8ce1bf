package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"fms-dashboard/internal/middleware"
	"fms-dashboard/internal/model"
)

// processScope returns the scope resolved by the Scope middleware, falling
// back to the request headers when the middleware did not run.
func (h *handler) processScope(c *gin.Context) model.Scope {
	if sc, ok := middleware.GetScope(c.Request.Context()); ok {
		return sc
	}
	return middleware.ScopeFromHeaders(c.Request.Header.Get)
}

// processDeveloperReq binds the board query parameters.
func (h *handler) processDeveloperReq(c *gin.Context) (developerReq, error) {
	var req developerReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAssignReq binds the assignment batch.
func (h *handler) processAssignReq(c *gin.Context) (assignReq, error) {
	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processReportReq binds the report query parameters.
func (h *handler) processReportReq(c *gin.Context) (reportReq, error) {
	var req reportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEvaluateReq binds either a single record or a batch.
func (h *handler) processEvaluateReq(c *gin.Context) (evaluateReq, error) {
	var req evaluateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCompleteReq(c *gin.Context) completeReq {
	return completeReq{TaskNo: strings.TrimSpace(c.Param("task_no"))}
}
