package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

// Stats computes the headline numbers over the tasks visible to sc.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (dashboard.StatsOutput, error) {
	records, err := uc.listAll(ctx, "Stats")
	if err != nil {
		return dashboard.StatsOutput{}, err
	}

	visible := visibleTo(sc, records)
	out := dashboard.StatsOutput{Total: len(visible)}
	for _, r := range visible {
		if r.Actual3.Present() {
			out.Completed++
			continue
		}
		out.PendingIssues++
		if sc.IsAdmin() {
			out.Active++
		}
	}
	return out, nil
}

// Counts runs the three count queries concurrently.
func (uc *implUseCase) Counts(ctx context.Context, sc model.Scope) (dashboard.CountsOutput, error) {
	var base repository.CountTasksOptions
	switch sc.Role {
	case model.RoleAdmin:
	case model.RoleCompany:
		if sc.CompanyName == "" {
			return dashboard.CountsOutput{}, nil
		}
		base.Company = sc.CompanyName
	case model.RoleUser:
		if sc.Username == "" {
			return dashboard.CountsOutput{}, nil
		}
		base.Member = sc.Username
	default:
		return dashboard.CountsOutput{}, dashboard.ErrForbidden
	}

	pending, completed := base, base
	pending.Pending = true
	completed.Completed = true

	var out dashboard.CountsOutput
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Total, err = uc.repo.CountTasks(gctx, base)
		return err
	})
	g.Go(func() (err error) {
		out.Pending, err = uc.repo.CountTasks(gctx, pending)
		return err
	})
	g.Go(func() (err error) {
		out.Completed, err = uc.repo.CountTasks(gctx, completed)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "Counts: failed to count tasks: %v", err)
		return dashboard.CountsOutput{}, storeErr(err)
	}
	return out, nil
}
