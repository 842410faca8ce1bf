package sqlite

import (
	"context"
	"fmt"

	repo "fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

// ListTasks returns the FMS rows matching opt.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.TaskRecord, error) {
	mods, args, err := r.buildListQuery(opt)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s FROM %s %s", selectColumns, taskTable, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var records []model.TaskRecord
	for rows.Next() {
		var rec model.TaskRecord
		if err := rows.Scan(rec.ScanTargets()...); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return records, nil
}

// CountTasks returns the number of FMS rows matching opt.
func (r *implRepository) CountTasks(ctx context.Context, opt repo.CountTasksOptions) (int, error) {
	mods, args := r.buildCountQuery(opt)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", taskTable, mods)

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return 0, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}
	return total, nil
}

// UpdateTask writes opt.Fields on the rows with opt.TaskNo.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) error {
	sets, args, err := r.buildUpdateQuery(opt)
	if err != nil {
		return err
	}
	if sets == "" {
		return nil
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE "task_no" = ?`, taskTable, sets)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ImportTasks inserts records in one transaction. Records without an id
// get one assigned.
func (r *implRepository) ImportTasks(ctx context.Context, records []model.TaskRecord) (int, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", taskTable, selectColumns, placeholders(len(model.TaskColumns)))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		if _, err := stmt.ExecContext(ctx, values(&records[i])...); err != nil {
			r.l.Errorf(ctx, "%s: record %d: %v", r.dsn("ImportTasks"), i, err)
			return 0, fmt.Errorf("import record %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(records), nil
}

// values dereferences ScanTargets so the record can be bound as arguments.
func values(rec *model.TaskRecord) []any {
	targets := rec.ScanTargets()
	out := make([]any, len(targets))
	for i, t := range targets {
		out[i] = *(t.(*model.Value))
	}
	return out
}
