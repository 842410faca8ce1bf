package usecase

import (
	"context"
	"errors"
	"strings"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

const isoDate = "2006-01-02"

// AssignTasks writes phase-two assignments one task at a time.
func (uc *implUseCase) AssignTasks(ctx context.Context, sc model.Scope, input dashboard.AssignTasksInput) (dashboard.AssignTasksOutput, error) {
	if !sc.IsAdmin() {
		return dashboard.AssignTasksOutput{}, dashboard.ErrForbidden
	}
	if len(input.Assignments) == 0 {
		return dashboard.AssignTasksOutput{}, dashboard.ErrNoAssignments
	}

	submitted := uc.now().Format(isoDate)
	out := dashboard.AssignTasksOutput{Failures: []dashboard.AssignmentFailure{}}

	for _, a := range input.Assignments {
		taskNo := strings.TrimSpace(a.TaskNo)
		if taskNo == "" || strings.TrimSpace(a.Member1) == "" || strings.TrimSpace(a.DateTime) == "" {
			out.Failed++
			out.Failures = append(out.Failures, dashboard.AssignmentFailure{TaskNo: taskNo, Reason: dashboard.ErrInvalidAssignment.Error()})
			continue
		}

		err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
			TaskNo: taskNo,
			Fields: map[string]string{
				"employee_name_1":      strings.TrimSpace(a.Member1),
				"employee_name_2":      strings.TrimSpace(a.Member2),
				"how_many_time_take_2": strings.TrimSpace(a.DateTime),
				"remarks_2":            a.Remarks,
				"actual2":              submitted,
				"posted_by":            a.PostedBy,
			},
		})
		if err != nil {
			uc.l.Warnf(ctx, "AssignTasks: task %s not updated: %v", taskNo, err)
			reason := err.Error()
			if errors.Is(err, repository.ErrNotFound) {
				reason = dashboard.ErrTaskNotFound.Error()
			}
			out.Failed++
			out.Failures = append(out.Failures, dashboard.AssignmentFailure{TaskNo: taskNo, Reason: reason})
			continue
		}
		out.Succeeded++
	}

	uc.l.Infof(ctx, "AssignTasks: %d assigned, %d failed", out.Succeeded, out.Failed)
	return out, nil
}

// CompleteTask stamps actual2 with the current date and time.
func (uc *implUseCase) CompleteTask(ctx context.Context, sc model.Scope, input dashboard.CompleteTaskInput) (dashboard.CompleteTaskOutput, error) {
	if !sc.IsAdmin() {
		return dashboard.CompleteTaskOutput{}, dashboard.ErrForbidden
	}
	taskNo := strings.TrimSpace(input.TaskNo)
	if taskNo == "" {
		return dashboard.CompleteTaskOutput{}, dashboard.ErrEmptyTaskNo
	}

	stamp := uc.dateMath.FormatDateTime(uc.now())
	err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		TaskNo: taskNo,
		Fields: map[string]string{"actual2": stamp},
	})
	if errors.Is(err, repository.ErrNotFound) {
		return dashboard.CompleteTaskOutput{}, dashboard.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "CompleteTask: failed to update %s: %v", taskNo, err)
		return dashboard.CompleteTaskOutput{}, storeErr(err)
	}

	return dashboard.CompleteTaskOutput{TaskNo: taskNo, Actual2: stamp}, nil
}
