package usecase

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/model"
	"fms-dashboard/pkg/workhours"
)

// memberAgg accumulates one member while records are walked newest first.
type memberAgg struct {
	out          dashboard.TeamMember
	latestAssign time.Time
	hasAssign    bool
	nearest      time.Time
	spentMinutes int
}

// TeamMembers aggregates workload per member.
func (uc *implUseCase) TeamMembers(ctx context.Context, sc model.Scope) (dashboard.TeamOutput, error) {
	if !sc.IsAdmin() {
		return dashboard.TeamOutput{Members: []dashboard.TeamMember{}}, nil
	}

	records, err := uc.listAll(ctx, "TeamMembers")
	if err != nil {
		return dashboard.TeamOutput{}, err
	}
	uc.sortNewestFirst(records)

	today := uc.dateMath.StartOfDay(uc.now())
	order := make([]string, 0)
	members := make(map[string]*memberAgg)

	for _, r := range records {
		name := memberKey(r)
		if name == "" {
			continue
		}

		m, ok := members[name]
		if !ok {
			spent := uc.calc.Compute(r)
			m = &memberAgg{
				out: dashboard.TeamMember{
					ID:         len(order) + 1,
					Name:       name,
					TeamName:   uc.teamName(ctx, name),
					Avatar:     strings.ToUpper(string([]rune(name)[:1])),
					AssignDate: dashboard.NoAssignDate,
					Status:     dashboard.StatusAvailable,
					TimeSpent:  spent,
				},
				spentMinutes: uc.calc.SpanMinutes(spent),
			}
			members[name] = m
			order = append(order, name)
		}
		m.out.TotalTasks++

		planned, actual := r.Planned3.Present(), r.Actual3.Present()
		switch {
		case actual:
			m.out.CompletedTasks++
		case planned:
			m.out.PendingTasks++
			if due, err := uc.dateMath.ParseDate(r.Planned3.Trim()); err == nil {
				day := uc.dateMath.StartOfDay(due)
				if day.After(today) && (m.nearest.IsZero() || day.Before(m.nearest)) {
					m.nearest = day
				}
			}
			spent := uc.calc.Compute(r)
			if n := uc.calc.SpanMinutes(spent); n > m.spentMinutes {
				m.out.TimeSpent, m.spentMinutes = spent, n
			}
		}

		uc.trackAssignDate(m, r)
	}

	out := make([]dashboard.TeamMember, 0, len(order))
	for _, name := range order {
		m := members[name]
		if !m.nearest.IsZero() {
			m.out.Status = uc.dateMath.FormatDate(m.nearest)
		}
		if m.out.TotalTasks > 0 {
			m.out.CompletionRate = int(math.Round(float64(m.out.CompletedTasks) / float64(m.out.TotalTasks) * 100))
		}
		if m.out.TimeSpent == "" {
			m.out.TimeSpent = workhours.Zero
		}
		out = append(out, m.out)
	}

	return dashboard.TeamOutput{Members: out}, nil
}

// memberKey is the lowercased team_member_name, or employee_name_1 when the
// former names a team.
func memberKey(r model.TaskRecord) string {
	member := strings.ToLower(r.TeamMemberName.Trim())
	employee := strings.ToLower(r.EmployeeName1.Trim())
	if member != "" && strings.Contains(member, "team") && employee != "" {
		return employee
	}
	return member
}

// trackAssignDate keeps the newest of given_date, timestamp, actual1.
func (uc *implUseCase) trackAssignDate(m *memberAgg, r model.TaskRecord) {
	raw := r.GivenDate.Or(r.Timestamp.Or(r.Actual1.Trim()))
	if raw == "" {
		return
	}
	t, err := uc.dateMath.ParseDate(raw)
	if err != nil {
		if !m.hasAssign {
			m.out.AssignDate, m.hasAssign = raw, true
		}
		return
	}
	if !m.hasAssign || m.latestAssign.IsZero() || t.After(m.latestAssign) {
		m.out.AssignDate = uc.dateMath.FormatDate(t)
		m.latestAssign, m.hasAssign = t, true
	}
}

type stampedRecord struct {
	rec   model.TaskRecord
	stamp time.Time
	id    int
}

// sortNewestFirst orders by parsed timestamp, then numeric id, both
// descending. Rows without a parsable timestamp go last.
func (uc *implUseCase) sortNewestFirst(records []model.TaskRecord) {
	keyed := make([]stampedRecord, len(records))
	for i, r := range records {
		keyed[i].rec = r
		if t, err := uc.dateMath.ParseDate(r.Timestamp.Trim()); err == nil {
			keyed[i].stamp = t
		}
		keyed[i].id, _ = strconv.Atoi(r.ID.Trim())
	}
	slices.SortStableFunc(keyed, func(a, b stampedRecord) int {
		if c := b.stamp.Compare(a.stamp); c != 0 {
			return c
		}
		return b.id - a.id
	})
	for i := range keyed {
		records[i] = keyed[i].rec
	}
}

// teamName looks the member up in the dropdown table, through the cache.
func (uc *implUseCase) teamName(ctx context.Context, member string) string {
	if uc.teamCache != nil {
		if team, ok := uc.teamCache.Get(member); ok {
			return team
		}
	}

	team, err := uc.repo.FindTeamName(ctx, member)
	if err != nil {
		uc.l.Warnf(ctx, "TeamMembers: team lookup for %q failed: %v", member, err)
		return dashboard.NoTeam
	}
	if team == "" {
		team = dashboard.NoTeam
	}
	if uc.teamCache != nil {
		uc.teamCache.Add(member, team)
	}
	return team
}
