package postgrest

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	repo "fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

// quote wraps a filter value for use inside or=(...). Reserved characters
// are only safe in double quotes.
func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}

func memberGroup(member string) string {
	return fmt.Sprintf("team_member_name.eq.%s,employee_name_1.eq.%s", quote(member), quote(member))
}

// setGroups adds or-groups; several groups are combined under and=().
func setGroups(q url.Values, groups []string) {
	switch len(groups) {
	case 0:
	case 1:
		q.Set("or", "("+groups[0]+")")
	default:
		parts := make([]string, len(groups))
		for i, g := range groups {
			parts[i] = "or(" + g + ")"
		}
		q.Set("and", "("+strings.Join(parts, ",")+")")
	}
}

// buildListQuery builds the filter, order and select parameters for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (url.Values, error) {
	q := url.Values{}
	q.Set("select", "*")

	if opt.Company != "" {
		q.Add("party_name", "eq."+opt.Company)
	}

	var groups []string
	if opt.Member != "" {
		groups = append(groups, memberGroup(opt.Member))
	}
	if len(opt.Statuses) > 0 || opt.IncludeNullStatus {
		conds := make([]string, 0, len(opt.Statuses)+1)
		for _, s := range opt.Statuses {
			conds = append(conds, "status.eq."+quote(s))
		}
		if opt.IncludeNullStatus {
			conds = append(conds, "status.is.null")
		}
		groups = append(groups, strings.Join(conds, ","))
	}
	setGroups(q, groups)

	if !opt.Planned3From.IsZero() {
		q.Add("planned3", "gte."+opt.Planned3From.UTC().Format(time.RFC3339))
	}
	if !opt.Planned3To.IsZero() {
		q.Add("planned3", "lte."+opt.Planned3To.UTC().Format(time.RFC3339))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "id"
	}
	if !model.IsTaskColumn(orderBy) {
		return nil, fmt.Errorf("%w: %q", repo.ErrInvalidColumn, orderBy)
	}
	dir := "asc"
	if opt.Descending {
		dir = "desc"
	}
	q.Set("order", orderBy+"."+dir)
	return q, nil
}

// buildCountQuery builds the filter parameters for CountTasks.
func (r *implRepository) buildCountQuery(opt repo.CountTasksOptions) url.Values {
	q := url.Values{}
	q.Set("select", "*")

	if opt.Company != "" {
		q.Add("party_name", "eq."+opt.Company)
	}
	if opt.Member != "" {
		setGroups(q, []string{memberGroup(opt.Member)})
	}
	if opt.Pending {
		q.Add("planned3", "not.is.null")
		q.Add("actual3", "is.null")
	}
	if opt.Completed {
		q.Add("actual3", "not.is.null")
	}
	return q
}
