package usecase

import (
	"context"
	"fmt"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/model"
)

// Company view task statuses.
const (
	companyCompleted  = "Completed"
	companyInProgress = "In Progress"
	companyNotStarted = "Not Started"
)

// CompanyTable lists the tasks of the scope's company.
func (uc *implUseCase) CompanyTable(ctx context.Context, sc model.Scope) (dashboard.CompanyOutput, error) {
	out := dashboard.CompanyOutput{Company: sc.CompanyName, Rows: []dashboard.CompanyRow{}}
	if sc.CompanyName == "" {
		return out, nil
	}

	records, err := uc.listAll(ctx, "CompanyTable")
	if err != nil {
		return dashboard.CompanyOutput{}, err
	}

	for _, r := range records {
		if !sc.MatchesCompany(r.PartyName) {
			continue
		}
		status := companyNotStarted
		switch {
		case r.Actual3.Present():
			status = companyCompleted
		case r.Planned3.Present():
			status = companyInProgress
		}
		out.Rows = append(out.Rows, dashboard.CompanyRow{
			ID:                  r.ID.Trim(),
			TaskNo:              r.TaskNo.Or(fmt.Sprintf("Task-%d", len(out.Rows)+1)),
			Status:              status,
			PartyName:           r.PartyName.Or(dashboard.NotAvailable),
			TypeOfWork:          r.TypeOfWork.Or(dashboard.NotAvailable),
			SystemName:          r.SystemName.Or(dashboard.NotAvailable),
			Description:         r.DescriptionOfWork.Or(dashboard.NotAvailable),
			Notes:               r.Notes.Or(dashboard.NotAvailable),
			TakenFrom:           r.TakenFrom.Or(dashboard.NotAvailable),
			ExpectedDateToClose: r.ExpectedDateToClose.Or(dashboard.NotAvailable),
			Priority:            r.PriorityInCustomer.Or(dashboard.DefaultPriority),
			LinkOfSystem:        r.WebsiteLink.Or(dashboard.NotAvailable),
			AttachmentFile:      r.AttachmentFile.Or(dashboard.NotAvailable),
			ActualSubmitDate:    r.Actual3.Or(dashboard.NotAvailable),
		})
	}
	return out, nil
}
