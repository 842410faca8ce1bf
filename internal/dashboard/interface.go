package dashboard

import (
	"context"

	"fms-dashboard/internal/model"
)

// UseCase defines the business logic interface for the dashboard domain.
type UseCase interface {
	// Projects lists every task with its stage, phase flags and time spent. Admin only; other roles get an empty list.
	Projects(ctx context.Context, sc model.Scope) (ProjectsOutput, error)

	// Stats computes headline numbers over the tasks visible to the scope.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)

	// Counts asks the store for total, pending and completed counts.
	Counts(ctx context.Context, sc model.Scope) (CountsOutput, error)

	// TeamMembers aggregates workload per team member. Admin only.
	TeamMembers(ctx context.Context, sc model.Scope) (TeamOutput, error)

	// CompanyTable lists the tasks of the scope's company.
	CompanyTable(ctx context.Context, sc model.Scope) (CompanyOutput, error)

	// DeveloperBoard returns the assignment board for one tab.
	DeveloperBoard(ctx context.Context, sc model.Scope, input DeveloperBoardInput) (DeveloperBoardOutput, error)

	// AssignTasks writes phase-two assignments. A failing task does not stop the others.
	AssignTasks(ctx context.Context, sc model.Scope, input AssignTasksInput) (AssignTasksOutput, error)

	// CompleteTask stamps phase two of a task as done now.
	CompleteTask(ctx context.Context, sc model.Scope, input CompleteTaskInput) (CompleteTaskOutput, error)

	// Report lists open tasks with deadline statistics.
	Report(ctx context.Context, sc model.Scope, input ReportInput) (ReportOutput, error)

	// ExportReport renders the report as CSV.
	ExportReport(ctx context.Context, sc model.Scope, input ExportReportInput) (ExportReportOutput, error)

	// Evaluate runs posted records through the stage and time-spent rules.
	Evaluate(ctx context.Context, sc model.Scope, input EvaluateInput) (EvaluateOutput, error)
}
