package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/model"
)

// ExportReport renders the report as CSV in one of three shapes.
func (uc *implUseCase) ExportReport(ctx context.Context, sc model.Scope, input dashboard.ExportReportInput) (dashboard.ExportReportOutput, error) {
	kind := strings.TrimSpace(input.Type)
	if kind == "" {
		kind = dashboard.ExportFull
	}

	var render func(reportData) [][]string
	switch kind {
	case dashboard.ExportFull:
		render = uc.fullRows
	case dashboard.ExportCompanySummary:
		render = companySummaryRows
	case dashboard.ExportPersonSummary:
		render = personSummaryRows
	default:
		return dashboard.ExportReportOutput{}, dashboard.ErrInvalidExportType
	}

	data, err := uc.loadReport(ctx, input.ReportInput)
	if err != nil {
		return dashboard.ExportReportOutput{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(render(data)); err != nil {
		uc.l.Errorf(ctx, "ExportReport: failed to write csv: %v", err)
		return dashboard.ExportReportOutput{}, fmt.Errorf("write csv: %w", err)
	}

	return dashboard.ExportReportOutput{
		FileName:    fmt.Sprintf("reports-%s-%s.csv", kind, uc.now().Format(isoDate)),
		ContentType: "text/csv",
		Content:     buf.Bytes(),
	}, nil
}

func (uc *implUseCase) fullRows(data reportData) [][]string {
	rows := [][]string{{"Task No", "Company", "Person", "System", "Expected Date", "Planned Date", "Status", "Priority"}}
	for _, r := range data.filtered {
		person := r.EmployeeName1.Or(r.TeamMemberName.Or(dashboard.Unassigned))
		rows = append(rows, []string{
			r.TaskNo.Trim(),
			r.PartyName.Trim(),
			person,
			r.SystemName.Trim(),
			r.Planned3.Trim(),
			uc.dateMath.DisplayDate(r.Planned3.String(), ""),
			r.Status.Or(dashboard.ReportStatusNone),
			r.PriorityInCustomer.Or(dashboard.BoardPriority),
		})
	}
	return rows
}

func companySummaryRows(data reportData) [][]string {
	rows := [][]string{{"Company", "Total Tasks", "Persons", "Task Distribution"}}
	for _, company := range data.companies {
		persons := data.stats.CompanyPersonDistribution[company]
		parts := make([]string, 0, len(persons))
		for _, p := range data.persons {
			if n, ok := persons[p]; ok {
				parts = append(parts, fmt.Sprintf("%s(%d)", p, n))
			}
		}
		rows = append(rows, []string{
			company,
			strconv.Itoa(data.stats.ByCompany[company]),
			strconv.Itoa(len(persons)),
			strings.Join(parts, ", "),
		})
	}
	return rows
}

func personSummaryRows(data reportData) [][]string {
	rows := [][]string{{"Person", "Total Tasks", "Companies", "Task Details"}}
	for _, person := range data.persons {
		var companies, taskNos []string
		seen := map[string]struct{}{}
		for _, r := range data.all {
			if r.EmployeeName1.Trim() != person && r.TeamMemberName.Trim() != person {
				continue
			}
			companies = appendUnique(companies, seen, r.PartyName.Trim())
			if r.TaskNo.Present() {
				taskNos = append(taskNos, r.TaskNo.Trim())
			}
		}
		rows = append(rows, []string{
			person,
			strconv.Itoa(data.stats.ByPerson[person]),
			strings.Join(companies, ", "),
			strings.Join(taskNos, ", "),
		})
	}
	return rows
}
