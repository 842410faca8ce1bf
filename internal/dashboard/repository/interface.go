package repository

import (
	"context"

	"fms-dashboard/internal/model"
)

// Repository is the composed interface for the dashboard data store.
type Repository interface {
	TaskRepository
	MemberRepository
}

// TaskRepository defines data access for the FMS task table.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.TaskRecord, error)
	CountTasks(ctx context.Context, opt CountTasksOptions) (int, error)
	// UpdateTask returns ErrNotFound when no row has the task number.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) error
}

// MemberRepository defines data access for the dropdown lookup table.
type MemberRepository interface {
	ListMembers(ctx context.Context) ([]model.DropdownEntry, error)
	// FindTeamName matches member_name case-insensitively. Returns "" when
	// the member is unknown.
	FindTeamName(ctx context.Context, member string) (string, error)
}
