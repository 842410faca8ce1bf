package http

import (
	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/model"
)

// --- Request DTOs ---

type developerReq struct {
	Tab      string `form:"tab"`
	Search   string `form:"search"`
	PostedBy string `form:"posted_by"`
}

func (r developerReq) toInput() dashboard.DeveloperBoardInput {
	return dashboard.DeveloperBoardInput{Tab: r.Tab, Search: r.Search, PostedBy: r.PostedBy}
}

// ---

type assignmentReq struct {
	TaskNo   string `json:"task_no"`
	Member1  string `json:"member_1"`
	Member2  string `json:"member_2"`
	DateTime string `json:"date_time"`
	Remarks  string `json:"remarks"`
	PostedBy string `json:"posted_by"`
}

type assignReq struct {
	Assignments []assignmentReq `json:"assignments"`
}

func (r assignReq) toInput() dashboard.AssignTasksInput {
	in := dashboard.AssignTasksInput{Assignments: make([]dashboard.Assignment, len(r.Assignments))}
	for i, a := range r.Assignments {
		in.Assignments[i] = dashboard.Assignment{
			TaskNo:   a.TaskNo,
			Member1:  a.Member1,
			Member2:  a.Member2,
			DateTime: a.DateTime,
			Remarks:  a.Remarks,
			PostedBy: a.PostedBy,
		}
	}
	return in
}

// ---

type completeReq struct {
	TaskNo string
}

func (r completeReq) toInput() dashboard.CompleteTaskInput {
	return dashboard.CompleteTaskInput{TaskNo: r.TaskNo}
}

// ---

type reportReq struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Search string `form:"search"`
	Type   string `form:"type"`
}

func (r reportReq) toInput() dashboard.ReportInput {
	return dashboard.ReportInput{From: r.From, To: r.To, Search: r.Search}
}

func (r reportReq) toExportInput() dashboard.ExportReportInput {
	return dashboard.ExportReportInput{ReportInput: r.toInput(), Type: r.Type}
}

// ---

type evaluateReq struct {
	Record  *model.TaskRecord  `json:"record"`
	Records []model.TaskRecord `json:"records"`
}

func (r evaluateReq) toInput() dashboard.EvaluateInput {
	records := r.Records
	if r.Record != nil {
		records = append([]model.TaskRecord{*r.Record}, records...)
	}
	return dashboard.EvaluateInput{Records: records}
}

// --- Response DTOs ---

type projectsResp struct {
	Projects []dashboard.Project `json:"projects"`
	Total    int                 `json:"total"`
	Skipped  int                 `json:"skipped"`
}

func (h *handler) newProjectsResp(o dashboard.ProjectsOutput) projectsResp {
	return projectsResp{Projects: o.Projects, Total: len(o.Projects), Skipped: o.Skipped}
}

type teamResp struct {
	Members []dashboard.TeamMember `json:"members"`
	Total   int                    `json:"total"`
}

func (h *handler) newTeamResp(o dashboard.TeamOutput) teamResp {
	return teamResp{Members: o.Members, Total: len(o.Members)}
}

type companyResp struct {
	Company string                 `json:"company"`
	Rows    []dashboard.CompanyRow `json:"rows"`
	Total   int                    `json:"total"`
}

func (h *handler) newCompanyResp(o dashboard.CompanyOutput) companyResp {
	return companyResp{Company: o.Company, Rows: o.Rows, Total: len(o.Rows)}
}

type developerResp struct {
	Tab      string                `json:"tab"`
	Tasks    []dashboard.BoardTask `json:"tasks"`
	Counts   dashboard.BoardCounts `json:"counts"`
	PostedBy []string              `json:"posted_by"`
	Members  []string              `json:"members"`
}

func (h *handler) newDeveloperResp(o dashboard.DeveloperBoardOutput) developerResp {
	return developerResp{Tab: o.Tab, Tasks: o.Tasks, Counts: o.Counts, PostedBy: o.PostedBy, Members: o.Members}
}

type assignResp struct {
	Succeeded int                           `json:"succeeded"`
	Failed    int                           `json:"failed"`
	Failures  []dashboard.AssignmentFailure `json:"failures"`
}

func (h *handler) newAssignResp(o dashboard.AssignTasksOutput) assignResp {
	return assignResp{Succeeded: o.Succeeded, Failed: o.Failed, Failures: o.Failures}
}

type completeResp struct {
	TaskNo  string `json:"task_no"`
	Actual2 string `json:"actual2"`
}

func (h *handler) newCompleteResp(o dashboard.CompleteTaskOutput) completeResp {
	return completeResp{TaskNo: o.TaskNo, Actual2: o.Actual2}
}

type reportResp struct {
	Rows      []dashboard.ReportRow `json:"rows"`
	Stats     dashboard.ReportStats `json:"stats"`
	Companies []string              `json:"companies"`
	Persons   []string              `json:"persons"`
}

func (h *handler) newReportResp(o dashboard.ReportOutput) reportResp {
	return reportResp{Rows: o.Rows, Stats: o.Stats, Companies: o.Companies, Persons: o.Persons}
}

type evaluateResp struct {
	Evaluations []dashboard.Evaluation `json:"evaluations"`
}

func (h *handler) newEvaluateResp(o dashboard.EvaluateOutput) evaluateResp {
	return evaluateResp{Evaluations: o.Evaluations}
}
