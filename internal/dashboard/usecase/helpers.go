package usecase

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/model"
	"fms-dashboard/internal/stage"
)

// annotation is the core view of one record.
type annotation struct {
	stage      stage.Stage
	phases     stage.PhaseFlags
	assignment stage.AssignmentStatus
	timeSpent  string
}

// annotate classifies records and computes time spent, fanning out across
// GOMAXPROCS workers. Results keep input order.
func (uc *implUseCase) annotate(ctx context.Context, records []model.TaskRecord) ([]annotation, error) {
	out := make([]annotation, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := uc.classifier.Classify(records[i])
			out[i] = annotation{
				stage:      s,
				phases:     stage.Phases(s),
				assignment: stage.AssignmentOf(records[i]),
				timeSpent:  uc.calc.Compute(records[i]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// listAll loads every task row.
func (uc *implUseCase) listAll(ctx context.Context, method string) ([]model.TaskRecord, error) {
	records, err := uc.repo.ListTasks(ctx, listAllOptions)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to list tasks: %v", method, err)
		return nil, storeErr(err)
	}
	return records, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", dashboard.ErrStoreUnavailable, err)
}

// visibleTo keeps the records the scope may see in the stats views.
func visibleTo(sc model.Scope, records []model.TaskRecord) []model.TaskRecord {
	switch sc.Role {
	case model.RoleAdmin:
		return records
	case model.RoleCompany:
		out := make([]model.TaskRecord, 0, len(records))
		for _, r := range records {
			if sc.MatchesCompany(r.PartyName) {
				out = append(out, r)
			}
		}
		return out
	case model.RoleUser:
		name, ok := sc.MemberName()
		if !ok {
			return nil
		}
		out := make([]model.TaskRecord, 0, len(records))
		for _, r := range records {
			if equalFold(r.TeamMemberName, name) || equalFold(r.EmployeeName2, name) {
				out = append(out, r)
			}
		}
		return out
	}
	return nil
}

func equalFold(v model.Value, s string) bool {
	return v.Present() && strings.EqualFold(v.Trim(), strings.TrimSpace(s))
}

// containsAny reports whether any field contains the lowercased query.
func containsAny(query string, fields ...model.Value) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f.String()), query) {
			return true
		}
	}
	return false
}

// appendUnique appends s when it is non-empty and not yet in seen.
func appendUnique(list []string, seen map[string]struct{}, s string) []string {
	if s == "" {
		return list
	}
	if _, ok := seen[s]; ok {
		return list
	}
	seen[s] = struct{}{}
	return append(list, s)
}
