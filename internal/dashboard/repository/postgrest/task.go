package postgrest

import (
	"context"
	"fmt"
	"net/url"

	repo "fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

// ListTasks returns the FMS rows matching opt.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.TaskRecord, error) {
	q, err := r.buildListQuery(opt)
	if err != nil {
		return nil, err
	}

	var records []model.TaskRecord
	if err := r.client.Select(ctx, taskTable, q, &records); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return records, nil
}

// CountTasks returns the number of FMS rows matching opt.
func (r *implRepository) CountTasks(ctx context.Context, opt repo.CountTasksOptions) (int, error) {
	n, err := r.client.Count(ctx, taskTable, r.buildCountQuery(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return 0, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}
	return n, nil
}

// UpdateTask writes opt.Fields on the row with opt.TaskNo.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) error {
	for col := range opt.Fields {
		if !model.IsTaskColumn(col) {
			return fmt.Errorf("%w: %q", repo.ErrInvalidColumn, col)
		}
	}

	q := url.Values{}
	q.Set("task_no", "eq."+opt.TaskNo)

	n, err := r.client.Update(ctx, taskTable, q, opt.Fields)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
