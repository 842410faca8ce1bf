package usecase

import (
	"context"
	"strings"
	"time"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

var openStatuses = []string{"Pending", "In Progress"}

// reportData is the loaded report before presentation. Stats cover all
// open rows; filtered applies the search.
type reportData struct {
	all       []model.TaskRecord
	filtered  []model.TaskRecord
	stats     dashboard.ReportStats
	companies []string // stats.ByCompany keys in first-seen order
	persons   []string // stats.ByPerson keys in first-seen order
	today     time.Time
}

// Report lists open tasks with deadline statistics.
func (uc *implUseCase) Report(ctx context.Context, sc model.Scope, input dashboard.ReportInput) (dashboard.ReportOutput, error) {
	data, err := uc.loadReport(ctx, input)
	if err != nil {
		return dashboard.ReportOutput{}, err
	}

	rows := make([]dashboard.ReportRow, len(data.filtered))
	for i, r := range data.filtered {
		rows[i] = dashboard.ReportRow{
			TaskNo:     r.TaskNo.Trim(),
			PartyName:  r.PartyName.Trim(),
			Person:     reportPerson(r),
			SystemName: r.SystemName.Trim(),
			Planned3:   r.Planned3.Trim(),
			Status:     r.Status.Or(dashboard.ReportStatusNone),
			Priority:   r.PriorityInCustomer.Or(dashboard.BoardPriority),
			Deadline:   uc.deadline(r.Planned3, data.today),
		}
	}

	companies, persons := []string{}, []string{}
	seenCompanies, seenPersons := map[string]struct{}{}, map[string]struct{}{}
	for _, r := range data.all {
		companies = appendUnique(companies, seenCompanies, r.PartyName.Trim())
		persons = appendUnique(persons, seenPersons, r.EmployeeName1.Trim())
	}

	return dashboard.ReportOutput{
		Rows:      rows,
		Stats:     data.stats,
		Companies: companies,
		Persons:   persons,
	}, nil
}

func (uc *implUseCase) loadReport(ctx context.Context, input dashboard.ReportInput) (reportData, error) {
	now := uc.now()
	opt := repository.ListTasksOptions{
		Statuses:          openStatuses,
		IncludeNullStatus: true,
		OrderBy:           "timestamp",
		Descending:        true,
	}

	if from, to := strings.TrimSpace(input.From), strings.TrimSpace(input.To); from != "" && to != "" {
		start, err := uc.dateMath.ParseRange(from, now)
		if err != nil {
			return reportData{}, dashboard.ErrInvalidDateRange
		}
		end, err := uc.dateMath.ParseRange(to, now)
		if err != nil {
			return reportData{}, dashboard.ErrInvalidDateRange
		}
		end = uc.dateMath.EndOfDay(uc.dateMath.StartOfDay(end))
		if start.After(end) {
			return reportData{}, dashboard.ErrInvalidDateRange
		}
		opt.Planned3From, opt.Planned3To = start, end
	}

	records, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "Report: failed to list tasks: %v", err)
		return reportData{}, storeErr(err)
	}

	data := reportData{
		all:   records,
		today: uc.dateMath.StartOfDay(now),
		stats: dashboard.ReportStats{
			TotalPending:              len(records),
			ByCompany:                 map[string]int{},
			ByPerson:                  map[string]int{},
			CompanyPersonDistribution: map[string]map[string]int{},
		},
	}

	for _, r := range records {
		company := r.PartyName.Or(dashboard.UnknownCompany)
		person := reportPerson(r)

		if _, ok := data.stats.ByCompany[company]; !ok {
			data.companies = append(data.companies, company)
			data.stats.CompanyPersonDistribution[company] = map[string]int{}
		}
		if _, ok := data.stats.ByPerson[person]; !ok {
			data.persons = append(data.persons, person)
		}
		data.stats.ByCompany[company]++
		data.stats.ByPerson[person]++
		data.stats.CompanyPersonDistribution[company][person]++

		switch uc.deadline(r.Planned3, data.today) {
		case dashboard.DeadlineToday:
			data.stats.Today++
		case dashboard.DeadlineUpcoming:
			data.stats.Upcoming++
		case dashboard.DeadlineOverdue:
			data.stats.Overdue++
		}
	}

	query := strings.ToLower(strings.TrimSpace(input.Search))
	data.filtered = records
	if query != "" {
		data.filtered = make([]model.TaskRecord, 0, len(records))
		for _, r := range records {
			if containsAny(query, r.TaskNo, r.PartyName, r.EmployeeName1, r.SystemName) {
				data.filtered = append(data.filtered, r)
			}
		}
	}

	return data, nil
}

// reportPerson is who a report row is attributed to.
func reportPerson(r model.TaskRecord) string {
	for _, v := range []model.Value{r.EmployeeName1, r.TeamMemberName, r.AssignedBy} {
		if v.Present() {
			return v.Trim()
		}
	}
	return dashboard.Unassigned
}

// deadline compares the day of planned3 with today.
func (uc *implUseCase) deadline(planned3 model.Value, today time.Time) string {
	if planned3.Empty() {
		return dashboard.DeadlineNone
	}
	due, err := uc.dateMath.ParseDate(planned3.Trim())
	if err != nil {
		return dashboard.DeadlineNone
	}
	switch day := uc.dateMath.StartOfDay(due); {
	case day.Equal(today):
		return dashboard.DeadlineToday
	case day.After(today):
		return dashboard.DeadlineUpcoming
	default:
		return dashboard.DeadlineOverdue
	}
}
