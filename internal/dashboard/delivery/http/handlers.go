package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fms-dashboard/pkg/response"
)

// Projects godoc
// @Summary     List projects
// @Description Lists every task with its stage, phase flags and time spent. Non-admin callers get an empty list.
// @Tags        Dashboard
// @Produce     json
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Success     200 {object} projectsResp
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/projects [GET]
func (h *handler) Projects(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Projects(ctx, h.processScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Projects: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProjectsResp(output))
}

// Stats godoc
// @Summary     Headline statistics
// @Description Total, active, completed and pending tasks visible to the caller.
// @Tags        Dashboard
// @Produce     json
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Success     200 {object} dashboard.StatsOutput
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx, h.processScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}

// Counts godoc
// @Summary     Store-side counts
// @Description Total, pending and completed counts computed by the task store.
// @Tags        Dashboard
// @Produce     json
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Success     200 {object} dashboard.CountsOutput
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/counts [GET]
func (h *handler) Counts(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Counts(ctx, h.processScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Counts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}

// Team godoc
// @Summary     Team workload
// @Description Per-member totals, completion rate, nearest deadline and time spent. Admin only.
// @Tags        Dashboard
// @Produce     json
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Success     200 {object} teamResp
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/team [GET]
func (h *handler) Team(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.TeamMembers(ctx, h.processScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.TeamMembers: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTeamResp(output))
}

// Company godoc
// @Summary     Company tasks
// @Description Tasks of the caller's company with their status.
// @Tags        Dashboard
// @Produce     json
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Success     200 {object} companyResp
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/company [GET]
func (h *handler) Company(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CompanyTable(ctx, h.processScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.CompanyTable: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompanyResp(output))
}

// Developer godoc
// @Summary     Developer board
// @Description Assignment board for the pending or history tab, with search and posted-by filters.
// @Tags        Dashboard
// @Produce     json
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Param       tab       query string false "pending (default) or history"
// @Param       search    query string false "Search party, task no, posted by, system, description"
// @Param       posted_by query string false "Posted-by filter; all disables it"
// @Success     200 {object} developerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/dashboard/developer [GET]
func (h *handler) Developer(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeveloperReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DeveloperBoard(ctx, h.processScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DeveloperBoard: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDeveloperResp(output))
}

// Assign godoc
// @Summary     Assign tasks
// @Description Writes phase-two assignments. Each task is updated on its own; failures are reported per task.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Param       body body assignReq true "Assignments"
// @Success     200 {object} assignResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/dashboard/assignments [POST]
func (h *handler) Assign(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAssignReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AssignTasks(ctx, h.processScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AssignTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAssignResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Stamps phase two of the task as done now.
// @Tags        Dashboard
// @Produce     json
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Param       task_no path string true "Task number"
// @Success     200 {object} completeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/dashboard/tasks/{task_no}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processCompleteReq(c)
	output, err := h.uc.CompleteTask(ctx, h.processScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Report godoc
// @Summary     Open task report
// @Description Open tasks (Pending, In Progress or no status) with company, person and deadline statistics.
// @Tags        Report
// @Produce     json
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Param       from   query string false "Range start: a date or an expression such as today, in 7 days"
// @Param       to     query string false "Range end, inclusive of the whole day"
// @Param       search query string false "Search task no, party, person, system"
// @Success     200 {object} reportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/dashboard/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Report(ctx, h.processScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Report: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReportResp(output))
}

// Export godoc
// @Summary     Export report as CSV
// @Description Renders the report as CSV: full, company-summary or person-summary.
// @Tags        Report
// @Produce     text/csv
// @Param       X-Username    header string false "Login name"
// @Param       X-Company     header string false "Company of a company login"
// @Param       X-Role        header string false "Role remembered by the session"
// @Param       X-Is-Admin    header bool   false "Admin flag"
// @Param       X-Member-Name header string false "Member name of a user login"
// @Param       type   query string false "full (default), company-summary or person-summary"
// @Param       from   query string false "Range start"
// @Param       to     query string false "Range end"
// @Param       search query string false "Search task no, party, person, system"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/dashboard/report/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportReport(ctx, h.processScope(c), req.toExportInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportReport: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, output.ContentType, output.Content)
}

// Evaluate godoc
// @Summary     Evaluate records
// @Description Runs posted records through the stage and time-spent rules. Send one record or a batch.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body evaluateReq true "Record or records"
// @Success     200 {object} evaluateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/dashboard/evaluate [POST]
func (h *handler) Evaluate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEvaluateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Evaluate(ctx, h.processScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Evaluate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newEvaluateResp(output))
}
