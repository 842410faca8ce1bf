package usecase

import (
	"context"
	"fmt"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

var listAllOptions = repository.ListTasksOptions{}

// Projects lists every task with its stage and time spent.
func (uc *implUseCase) Projects(ctx context.Context, sc model.Scope) (dashboard.ProjectsOutput, error) {
	if !sc.IsAdmin() {
		return dashboard.ProjectsOutput{Projects: []dashboard.Project{}}, nil
	}

	records, err := uc.listAll(ctx, "Projects")
	if err != nil {
		return dashboard.ProjectsOutput{}, err
	}

	kept := make([]model.TaskRecord, 0, len(records))
	for _, r := range records {
		if r.TaskNo.Present() || r.DescriptionOfWork.Present() {
			kept = append(kept, r)
		}
	}
	skipped := len(records) - len(kept)
	if skipped > 0 {
		uc.l.Debugf(ctx, "Projects: skipped %d rows without task number or description", skipped)
	}

	notes, err := uc.annotate(ctx, kept)
	if err != nil {
		return dashboard.ProjectsOutput{}, err
	}

	projects := make([]dashboard.Project, len(kept))
	for i, r := range kept {
		projects[i] = dashboard.Project{
			ID:          r.ID.Trim(),
			TaskNo:      r.TaskNo.Or(fmt.Sprintf("Task-%d", i+1)),
			PostedBy:    r.PostedBy.Or(dashboard.NotAvailable),
			TypeOfWork:  r.TypeOfWork.Or(dashboard.NotAvailable),
			TakenFrom:   r.TakenFrom.Or(dashboard.NotAvailable),
			PartyName:   r.PartyName.Or(dashboard.NotAvailable),
			SystemName:  r.SystemName.Or(dashboard.NotAvailable),
			Description: r.DescriptionOfWork.Or(dashboard.NotAvailable),
			Stage:       notes[i].stage,
			Phases:      notes[i].phases,
			Priority:    r.PriorityInCustomer.Or(dashboard.DefaultPriority),
			Planned1:    r.Planned1.String(),
			Actual1:     r.Actual1.String(),
			Planned2:    r.Planned2.String(),
			Actual2:     r.Actual2.String(),
			Planned3:    r.Planned3.String(),
			Actual3:     r.Actual3.String(),
			Timestamp:   r.Timestamp.String(),
			GivenDate:   r.GivenDate.String(),
			Status:      r.Status.Trim(),
			TeamName:    r.TeamName.Trim(),
			AssignedBy:  r.AssignedBy.Trim(),
			TimeSpent:   notes[i].timeSpent,
		}
	}

	return dashboard.ProjectsOutput{Projects: projects, Skipped: skipped}, nil
}
