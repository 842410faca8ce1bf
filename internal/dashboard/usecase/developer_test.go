package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/model"
	"fms-dashboard/internal/stage"
)

func boardRepo() *fakeRepo {
	return &fakeRepo{
		tasks: []model.TaskRecord{
			{ID: "1", TaskNo: "T1", PostedBy: "Raj", PartyName: "Acme", Planned1: "2024-03-01", Planned2: "2024-03-01T09:30:00Z"},
			{ID: "2", TaskNo: "T2", PostedBy: "Sam", Planned2: "2024-03-01", Actual2: "2024-03-02", Actual3: "2024-03-03"},
			{ID: "3", PostedBy: "Nobody", Planned2: "2024-03-01"},
			{ID: "4", TaskNo: "T4", PostedBy: "Raj", Planned2: "2024-03-01", Actual2: "2024-03-02"},
			{ID: "5", TaskNo: "T5", PostedBy: "Sam", SystemName: "Payroll", Planned2: "2024-03-04"},
		},
		members: []model.DropdownEntry{{MemberName: "Alice"}, {MemberName: " "}, {MemberName: "Alice"}, {MemberName: "Bob"}},
	}
}

func taskNos(tasks []dashboard.BoardTask) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.TaskNo
	}
	return out
}

func TestDeveloperBoard(t *testing.T) {
	tests := []struct {
		name  string
		input dashboard.DeveloperBoardInput
		want  []string
	}{
		{name: "Pending tab by default", input: dashboard.DeveloperBoardInput{}, want: []string{"T5", "T1"}},
		{name: "History tab", input: dashboard.DeveloperBoardInput{Tab: "history"}, want: []string{"T2"}},
		{name: "Search", input: dashboard.DeveloperBoardInput{Search: "PAYROLL"}, want: []string{"T5"}},
		{name: "Posted by", input: dashboard.DeveloperBoardInput{PostedBy: "Raj"}, want: []string{"T1"}},
		{name: "Posted by all", input: dashboard.DeveloperBoardInput{PostedBy: "all"}, want: []string{"T5", "T1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newUseCase(boardRepo()).DeveloperBoard(context.Background(), user, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := taskNos(out.Tasks); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tasks = %v, want %v", got, tt.want)
			}
			if out.Counts != (dashboard.BoardCounts{Total: 4, Pending: 2, History: 1}) {
				t.Errorf("unexpected counts: %+v", out.Counts)
			}
		})
	}

	t.Run("Presentation", func(t *testing.T) {
		out, err := newUseCase(boardRepo()).DeveloperBoard(context.Background(), user, dashboard.DeveloperBoardInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out.PostedBy, []string{"Sam", "Raj"}) {
			t.Errorf("posted by = %v", out.PostedBy)
		}
		if !reflect.DeepEqual(out.Members, []string{"Alice", "Bob"}) {
			t.Errorf("members = %v", out.Members)
		}
		t1 := out.Tasks[1]
		if t1.Planned2 != "01/03/2024 09:30" || t1.Priority != dashboard.BoardPriority || t1.Status != stage.AssignmentAssigned {
			t.Errorf("unexpected task: %+v", t1)
		}
	})

	t.Run("Unknown tab", func(t *testing.T) {
		_, err := newUseCase(boardRepo()).DeveloperBoard(context.Background(), user, dashboard.DeveloperBoardInput{Tab: "archive"})
		if !errors.Is(err, dashboard.ErrInvalidTab) {
			t.Errorf("expected ErrInvalidTab, got %v", err)
		}
	})
}

func TestAssignTasks(t *testing.T) {
	repo := &fakeRepo{tasks: []model.TaskRecord{{TaskNo: "T1"}, {TaskNo: "T2"}}}
	uc := newUseCase(repo)

	_, err := uc.AssignTasks(context.Background(), user, dashboard.AssignTasksInput{})
	if !errors.Is(err, dashboard.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	_, err = uc.AssignTasks(context.Background(), admin, dashboard.AssignTasksInput{})
	if !errors.Is(err, dashboard.ErrNoAssignments) {
		t.Fatalf("expected ErrNoAssignments, got %v", err)
	}

	out, err := uc.AssignTasks(context.Background(), admin, dashboard.AssignTasksInput{Assignments: []dashboard.Assignment{
		{TaskNo: "T1", Member1: "Alice", Member2: "Bob", DateTime: "2h 30m", Remarks: "urgent", PostedBy: "Raj"},
		{TaskNo: "T2", DateTime: "1h"},
		{TaskNo: "T-404", Member1: "Alice", DateTime: "1h"},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Succeeded != 1 || out.Failed != 2 {
		t.Fatalf("succeeded=%d failed=%d", out.Succeeded, out.Failed)
	}
	if out.Failures[1].TaskNo != "T-404" || out.Failures[1].Reason != dashboard.ErrTaskNotFound.Error() {
		t.Errorf("unexpected failure: %+v", out.Failures[1])
	}

	want := map[string]string{
		"employee_name_1":      "Alice",
		"employee_name_2":      "Bob",
		"how_many_time_take_2": "2h 30m",
		"remarks_2":            "urgent",
		"actual2":              "2024-03-05",
		"posted_by":            "Raj",
	}
	if !reflect.DeepEqual(repo.updates[0].Fields, want) {
		t.Errorf("fields = %v, want %v", repo.updates[0].Fields, want)
	}
}

func TestCompleteTask(t *testing.T) {
	repo := &fakeRepo{tasks: []model.TaskRecord{{TaskNo: "T1"}}}
	uc := newUseCase(repo)

	out, err := uc.CompleteTask(context.Background(), admin, dashboard.CompleteTaskInput{TaskNo: " T1 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Actual2 != "05/03/2024 12:00" || repo.updates[0].Fields["actual2"] != out.Actual2 {
		t.Errorf("unexpected stamp %q", out.Actual2)
	}

	tests := []struct {
		name  string
		scope model.Scope
		input string
		want  error
	}{
		{name: "Forbidden", scope: company, input: "T1", want: dashboard.ErrForbidden},
		{name: "Empty", scope: admin, input: "  ", want: dashboard.ErrEmptyTaskNo},
		{name: "Missing", scope: admin, input: "T9", want: dashboard.ErrTaskNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CompleteTask(context.Background(), tt.scope, dashboard.CompleteTaskInput{TaskNo: tt.input})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
