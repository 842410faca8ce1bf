package sqlite

import (
	"fmt"
	"sort"
	"strings"
	"time"

	repo "fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

func quoteIdent(name string) string {
	return `"` + name + `"`
}

var selectColumns = func() string {
	cols := make([]string, len(model.TaskColumns))
	for i, c := range model.TaskColumns {
		cols[i] = quoteIdent(c)
	}
	return strings.Join(cols, ", ")
}()

func memberCondition() string {
	return `("team_member_name" = ? OR "employee_name_1" = ?)`
}

// buildListQuery builds the WHERE and ORDER BY clause + args for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any, error) {
	var conditions []string
	var args []any

	if opt.Company != "" {
		conditions = append(conditions, `"party_name" = ?`)
		args = append(args, opt.Company)
	}
	if opt.Member != "" {
		conditions = append(conditions, memberCondition())
		args = append(args, opt.Member, opt.Member)
	}
	if len(opt.Statuses) > 0 || opt.IncludeNullStatus {
		var ors []string
		if len(opt.Statuses) > 0 {
			ors = append(ors, fmt.Sprintf(`"status" IN (%s)`, placeholders(len(opt.Statuses))))
			for _, s := range opt.Statuses {
				args = append(args, s)
			}
		}
		if opt.IncludeNullStatus {
			ors = append(ors, `"status" IS NULL`)
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
	}
	if !opt.Planned3From.IsZero() {
		conditions = append(conditions, `"planned3" >= ?`)
		args = append(args, opt.Planned3From.UTC().Format(time.RFC3339))
	}
	if !opt.Planned3To.IsZero() {
		conditions = append(conditions, `"planned3" <= ?`)
		args = append(args, opt.Planned3To.UTC().Format(time.RFC3339))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "id"
	}
	if !model.IsTaskColumn(orderBy) {
		return "", nil, fmt.Errorf("%w: %q", repo.ErrInvalidColumn, orderBy)
	}
	dir := "ASC"
	if opt.Descending {
		dir = "DESC"
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}
	return fmt.Sprintf("WHERE %s ORDER BY %s %s", where, quoteIdent(orderBy), dir), args, nil
}

// buildCountQuery builds the WHERE clause + args for CountTasks.
func (r *implRepository) buildCountQuery(opt repo.CountTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Company != "" {
		conditions = append(conditions, `"party_name" = ?`)
		args = append(args, opt.Company)
	}
	if opt.Member != "" {
		conditions = append(conditions, memberCondition())
		args = append(args, opt.Member, opt.Member)
	}
	if opt.Pending {
		conditions = append(conditions, `"planned3" IS NOT NULL AND "actual3" IS NULL`)
	}
	if opt.Completed {
		conditions = append(conditions, `"actual3" IS NOT NULL`)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateTask. Columns are
// sorted so the statement is stable.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any, error) {
	cols := make([]string, 0, len(opt.Fields))
	for c := range opt.Fields {
		if !model.IsTaskColumn(c) || c == "id" {
			return "", nil, fmt.Errorf("%w: %q", repo.ErrInvalidColumn, c)
		}
		cols = append(cols, c)
	}
	sort.Strings(cols)

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		sets[i] = quoteIdent(c) + " = ?"
		args = append(args, model.Value(opt.Fields[c]))
	}
	args = append(args, opt.TaskNo)
	return strings.Join(sets, ", "), args, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
