package usecase

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/model"
	"fms-dashboard/internal/stage"
)

type boardEntry struct {
	task  dashboard.BoardTask
	row   int
	raw   model.TaskRecord
	early bool // assigned in phase two but not yet done
}

// DeveloperBoard returns the assignment board for one tab.
func (uc *implUseCase) DeveloperBoard(ctx context.Context, sc model.Scope, input dashboard.DeveloperBoardInput) (dashboard.DeveloperBoardOutput, error) {
	tab := strings.ToLower(strings.TrimSpace(input.Tab))
	if tab == "" {
		tab = dashboard.TabPending
	}
	if tab != dashboard.TabPending && tab != dashboard.TabHistory {
		return dashboard.DeveloperBoardOutput{}, dashboard.ErrInvalidTab
	}

	var (
		records []model.TaskRecord
		entries []model.DropdownEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = uc.repo.ListTasks(gctx, listAllOptions)
		return err
	})
	g.Go(func() (err error) {
		entries, err = uc.repo.ListMembers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "DeveloperBoard: failed to load board: %v", err)
		return dashboard.DeveloperBoardOutput{}, storeErr(err)
	}

	board := make([]boardEntry, 0, len(records))
	for i, r := range records {
		if r.TaskNo.Empty() {
			continue
		}
		board = append(board, boardEntry{
			task:  uc.boardTask(r),
			row:   i,
			raw:   r,
			early: r.Planned2.Present() && r.Actual2.Empty(),
		})
	}
	slices.SortStableFunc(board, func(a, b boardEntry) int {
		if a.early != b.early {
			if a.early {
				return -1
			}
			return 1
		}
		return b.row - a.row
	})

	out := dashboard.DeveloperBoardOutput{
		Tab:      tab,
		Tasks:    []dashboard.BoardTask{},
		PostedBy: []string{},
		Members:  []string{},
	}
	out.Counts.Total = len(board)

	seenPosted := make(map[string]struct{})
	query := strings.ToLower(strings.TrimSpace(input.Search))
	postedBy := strings.TrimSpace(input.PostedBy)
	for _, e := range board {
		r := e.raw
		out.PostedBy = appendUnique(out.PostedBy, seenPosted, r.PostedBy.String())

		var inTab bool
		switch {
		case r.Planned2.Present() && r.Actual2.Empty() && r.Actual3.Empty():
			out.Counts.Pending++
			inTab = tab == dashboard.TabPending
		case r.Planned2.Present() && r.Actual2.Present() && r.Actual3.Present():
			out.Counts.History++
			inTab = tab == dashboard.TabHistory
		}
		if !inTab {
			continue
		}
		if query != "" && !containsAny(query, r.PartyName, r.TaskNo, r.PostedBy, r.SystemName, r.DescriptionOfWork) {
			continue
		}
		if postedBy != "" && postedBy != "all" && r.PostedBy.String() != postedBy {
			continue
		}
		out.Tasks = append(out.Tasks, e.task)
	}

	seenMembers := make(map[string]struct{})
	for _, m := range entries {
		out.Members = appendUnique(out.Members, seenMembers, m.MemberName.Trim())
	}

	return out, nil
}

func (uc *implUseCase) boardTask(r model.TaskRecord) dashboard.BoardTask {
	return dashboard.BoardTask{
		ID:                  r.ID.Trim(),
		TaskNo:              r.TaskNo.Trim(),
		GivenDate:           uc.dateMath.DisplayDateTime(r.GivenDate.String()),
		PostedBy:            r.PostedBy.String(),
		TypeOfWork:          r.TypeOfWork.String(),
		TakenFrom:           r.TakenFrom.String(),
		PartyName:           r.PartyName.String(),
		SystemName:          r.SystemName.String(),
		Description:         r.DescriptionOfWork.String(),
		LinkOfSystem:        r.LinkOfSystem.String(),
		AttachmentFile:      r.AttachmentFile.String(),
		Priority:            r.PriorityInCustomer.Or(dashboard.BoardPriority),
		Notes:               r.Notes.String(),
		ExpectedDateToClose: uc.dateMath.DisplayDateTime(r.ExpectedDateToClose.String()),
		Planned2:            uc.dateMath.DisplayDateTime(r.Planned2.String()),
		Actual2:             uc.dateMath.DisplayDateTime(r.Actual2.String()),
		Actual3:             uc.dateMath.DisplayDateTime(r.Actual3.String()),
		AssignedMember1:     r.EmployeeName1.String(),
		AssignedMember2:     r.EmployeeName2.String(),
		TimeRequired:        r.DurationHint1.String(),
		Remarks:             r.Remarks.String(),
		Status:              stage.AssignmentOf(r),
	}
}
