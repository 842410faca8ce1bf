package dashboard

import (
	"fms-dashboard/internal/model"
	"fms-dashboard/internal/stage"
)

// Display defaults.
const (
	NotAvailable     = "N/A"
	DefaultPriority  = "Normal"
	BoardPriority    = "Medium"
	NoTeam           = "No Team"
	NoAssignDate     = "No assign date"
	StatusAvailable  = "available"
	UnknownCompany   = "Unknown Company"
	Unassigned       = "Unassigned"
	ReportStatusNone = "Pending"
)

// Project is one row of the admin projects table.
type Project struct {
	ID          string           `json:"id"`
	TaskNo      string           `json:"task_no"`
	PostedBy    string           `json:"posted_by"`
	TypeOfWork  string           `json:"type_of_work"`
	TakenFrom   string           `json:"taken_from"`
	PartyName   string           `json:"party_name"`
	SystemName  string           `json:"system_name"`
	Description string           `json:"description_of_work"`
	Stage       stage.Stage      `json:"current_stage"`
	Phases      stage.PhaseFlags `json:"phases"`
	Priority    string           `json:"priority"`
	Planned1    string           `json:"planned1"`
	Actual1     string           `json:"actual1"`
	Planned2    string           `json:"planned2"`
	Actual2     string           `json:"actual2"`
	Planned3    string           `json:"planned3"`
	Actual3     string           `json:"actual3"`
	Timestamp   string           `json:"timestamp"`
	GivenDate   string           `json:"given_date"`
	Status      string           `json:"status"`
	TeamName    string           `json:"team_name"`
	AssignedBy  string           `json:"assigned_by"`
	TimeSpent   string           `json:"time_spent"`
}

// ProjectsOutput is the result of Projects.
type ProjectsOutput struct {
	Projects []Project
	Skipped  int // Rows with neither task number nor description
}

// StatsOutput holds the headline numbers. Active is only computed for admins.
type StatsOutput struct {
	Total         int `json:"total_tasks"`
	Active        int `json:"active_tasks"`
	Completed     int `json:"completed"`
	PendingIssues int `json:"pending_issues"`
}

// CountsOutput holds store-side counts.
type CountsOutput struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// TeamMember is the workload summary of one member.
type TeamMember struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	TeamName       string `json:"team_name"`
	Avatar         string `json:"avatar"`
	AssignDate     string `json:"assign_date"`
	TotalTasks     int    `json:"total_tasks"`
	CompletedTasks int    `json:"completed_tasks"`
	PendingTasks   int    `json:"pending_tasks"`
	Status         string `json:"status"` // Nearest future deadline, or "available"
	CompletionRate int    `json:"completion_rate"`
	TimeSpent      string `json:"time_spent"`
}

// TeamOutput is the result of TeamMembers.
type TeamOutput struct {
	Members []TeamMember
}

// CompanyRow is one row of the company view.
type CompanyRow struct {
	ID                  string `json:"id"`
	TaskNo              string `json:"task_no"`
	Status              string `json:"status"`
	PartyName           string `json:"party_name"`
	TypeOfWork          string `json:"type_of_work"`
	SystemName          string `json:"system_name"`
	Description         string `json:"description_of_work"`
	Notes               string `json:"notes"`
	TakenFrom           string `json:"taken_from"`
	ExpectedDateToClose string `json:"expected_date_to_close"`
	Priority            string `json:"priority"`
	LinkOfSystem        string `json:"link_of_system"`
	AttachmentFile      string `json:"attachment_file"`
	ActualSubmitDate    string `json:"actual_submit_date"`
}

// CompanyOutput is the result of CompanyTable.
type CompanyOutput struct {
	Company string
	Rows    []CompanyRow
}

// Board tabs.
const (
	TabPending = "pending"
	TabHistory = "history"
)

// DeveloperBoardInput selects and filters the board.
type DeveloperBoardInput struct {
	Tab      string // pending (default) or history
	Search   string
	PostedBy string // "all" or empty disables the filter
}

// BoardTask is one task on the developer board. Dates are DD/MM/YYYY HH:MM.
type BoardTask struct {
	ID                  string                 `json:"id"`
	TaskNo              string                 `json:"task_no"`
	GivenDate           string                 `json:"given_date"`
	PostedBy            string                 `json:"posted_by"`
	TypeOfWork          string                 `json:"type_of_work"`
	TakenFrom           string                 `json:"taken_from"`
	PartyName           string                 `json:"party_name"`
	SystemName          string                 `json:"system_name"`
	Description         string                 `json:"description_of_work"`
	LinkOfSystem        string                 `json:"link_of_system"`
	AttachmentFile      string                 `json:"attachment_file"`
	Priority            string                 `json:"priority"`
	Notes               string                 `json:"notes"`
	ExpectedDateToClose string                 `json:"expected_date_to_close"`
	Planned2            string                 `json:"planned2"`
	Actual2             string                 `json:"actual2"`
	Actual3             string                 `json:"actual3"`
	AssignedMember1     string                 `json:"assigned_member_1"`
	AssignedMember2     string                 `json:"assigned_member_2"`
	TimeRequired        string                 `json:"time_required"`
	Remarks             string                 `json:"remarks"`
	Status              stage.AssignmentStatus `json:"status"`
}

// BoardCounts are computed before search and posted-by filtering.
type BoardCounts struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	History int `json:"history"`
}

// DeveloperBoardOutput is the result of DeveloperBoard.
type DeveloperBoardOutput struct {
	Tab      string
	Tasks    []BoardTask
	Counts   BoardCounts
	PostedBy []string
	Members  []string
}

// Assignment is one phase-two assignment.
type Assignment struct {
	TaskNo   string
	Member1  string
	Member2  string
	DateTime string // Free-text time allowance, stored in how_many_time_take_2
	Remarks  string
	PostedBy string
}

// AssignTasksInput is the input for AssignTasks.
type AssignTasksInput struct {
	Assignments []Assignment
}

// AssignmentFailure reports one task that could not be updated.
type AssignmentFailure struct {
	TaskNo string `json:"task_no"`
	Reason string `json:"reason"`
}

// AssignTasksOutput is the result of AssignTasks.
type AssignTasksOutput struct {
	Succeeded int
	Failed    int
	Failures  []AssignmentFailure
}

// CompleteTaskInput is the input for CompleteTask.
type CompleteTaskInput struct {
	TaskNo string
}

// CompleteTaskOutput is the result of CompleteTask.
type CompleteTaskOutput struct {
	TaskNo  string
	Actual2 string // DD/MM/YYYY HH:MM
}

// Deadline classes of a report row.
const (
	DeadlineToday    = "today"
	DeadlineUpcoming = "upcoming"
	DeadlineOverdue  = "overdue"
	DeadlineNone     = "no-deadline"
)

// ReportInput selects report rows. From and To accept absolute dates or
// relative expressions; the range applies only when both are set.
type ReportInput struct {
	From   string
	To     string
	Search string
}

// ReportRow is one open task.
type ReportRow struct {
	TaskNo     string `json:"task_no"`
	PartyName  string `json:"party_name"`
	Person     string `json:"person"`
	SystemName string `json:"system_name"`
	Planned3   string `json:"planned3"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	Deadline   string `json:"deadline"`
}

// ReportStats summarise the unfiltered report rows.
type ReportStats struct {
	TotalPending              int                       `json:"total_pending"`
	ByCompany                 map[string]int            `json:"by_company"`
	ByPerson                  map[string]int            `json:"by_person"`
	CompanyPersonDistribution map[string]map[string]int `json:"company_person_distribution"`
	Today                     int                       `json:"today"`
	Upcoming                  int                       `json:"upcoming"`
	Overdue                   int                       `json:"overdue"`
}

// ReportOutput is the result of Report.
type ReportOutput struct {
	Rows      []ReportRow
	Stats     ReportStats
	Companies []string
	Persons   []string
}

// Export shapes.
const (
	ExportFull           = "full"
	ExportCompanySummary = "company-summary"
	ExportPersonSummary  = "person-summary"
)

// ExportReportInput is the input for ExportReport.
type ExportReportInput struct {
	ReportInput
	Type string // full (default), company-summary or person-summary
}

// ExportReportOutput is a rendered CSV file.
type ExportReportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// EvaluateInput is the input for Evaluate.
type EvaluateInput struct {
	Records []model.TaskRecord
}

// Evaluation is the derived view of one record.
type Evaluation struct {
	Task       string                 `json:"task"`
	Stage      stage.Stage            `json:"stage"`
	Phases     stage.PhaseFlags       `json:"phases"`
	Assignment stage.AssignmentStatus `json:"assignment"`
	TimeSpent  string                 `json:"time_spent"`
}

// EvaluateOutput is the result of Evaluate, in input order.
type EvaluateOutput struct {
	Evaluations []Evaluation
}
