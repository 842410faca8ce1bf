package usecase_test

import (
	"context"
	"errors"
	"testing"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
	"fms-dashboard/internal/stage"
)

func TestProjects(t *testing.T) {
	repo := &fakeRepo{tasks: []model.TaskRecord{
		{ID: "1", TaskNo: "T-1", PartyName: " Acme ", Planned1: "2024-03-01"},
		{ID: "2"},
		{ID: "3", DescriptionOfWork: "Fix login", Planned3: "2024-03-01", Actual3: "2024-03-02", PriorityInCustomer: "High"},
	}}
	uc := newUseCase(repo)

	t.Run("Non-admin sees nothing", func(t *testing.T) {
		out, err := uc.Projects(context.Background(), company)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Projects) != 0 {
			t.Errorf("expected no projects, got %d", len(out.Projects))
		}
	})

	t.Run("Admin", func(t *testing.T) {
		out, err := uc.Projects(context.Background(), admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Skipped != 1 || len(out.Projects) != 2 {
			t.Fatalf("got %d projects, %d skipped", len(out.Projects), out.Skipped)
		}

		first := out.Projects[0]
		if first.PartyName != "Acme" || first.SystemName != dashboard.NotAvailable || first.Priority != dashboard.DefaultPriority {
			t.Errorf("unexpected display fields: %+v", first)
		}
		if first.Stage != stage.Stage1 || first.Phases.Stage1 != stage.PhaseActive {
			t.Errorf("expected Stage 1, got %v %+v", first.Stage, first.Phases)
		}

		second := out.Projects[1]
		if second.TaskNo != "Task-2" {
			t.Errorf("expected default task number Task-2, got %q", second.TaskNo)
		}
		if second.Stage != stage.Completed || second.Priority != "High" || second.TimeSpent != "0h 0m" {
			t.Errorf("unexpected second project: %+v", second)
		}
	})

	t.Run("Store error", func(t *testing.T) {
		uc := newUseCase(&fakeRepo{listErr: errBackend})
		_, err := uc.Projects(context.Background(), admin)
		if !errors.Is(err, dashboard.ErrStoreUnavailable) {
			t.Errorf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestStats(t *testing.T) {
	repo := &fakeRepo{tasks: []model.TaskRecord{
		{PartyName: "ACME", TeamMemberName: "Alice", Actual3: "2024-03-01"},
		{PartyName: "acme", EmployeeName2: "alice"},
		{PartyName: "Globex", TeamMemberName: "bob"},
	}}
	uc := newUseCase(repo)

	tests := []struct {
		name  string
		scope model.Scope
		want  dashboard.StatsOutput
	}{
		{name: "Admin", scope: admin, want: dashboard.StatsOutput{Total: 3, Active: 2, Completed: 1, PendingIssues: 2}},
		{name: "Company", scope: company, want: dashboard.StatsOutput{Total: 2, Completed: 1, PendingIssues: 1}},
		{name: "User", scope: user, want: dashboard.StatsOutput{Total: 2, Completed: 1, PendingIssues: 1}},
		{name: "Unusable member name", scope: model.Scope{Role: model.RoleUser, Username: "undefined"}, want: dashboard.StatsOutput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Stats(context.Background(), tt.scope)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Stats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	counts := func(opt repository.CountTasksOptions) int {
		switch {
		case opt.Pending:
			return 4
		case opt.Completed:
			return 3
		}
		return 9
	}

	t.Run("Company scope filters by party", func(t *testing.T) {
		repo := &fakeRepo{counts: counts}
		out, err := newUseCase(repo).Counts(context.Background(), company)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != (dashboard.CountsOutput{Total: 9, Pending: 4, Completed: 3}) {
			t.Errorf("unexpected counts: %+v", out)
		}
		if len(repo.countOpts) != 3 {
			t.Fatalf("expected 3 count queries, got %d", len(repo.countOpts))
		}
		for _, opt := range repo.countOpts {
			if opt.Company != "acme" || opt.Member != "" {
				t.Errorf("unexpected filter: %+v", opt)
			}
		}
	})

	t.Run("User scope filters by member", func(t *testing.T) {
		repo := &fakeRepo{counts: counts}
		if _, err := newUseCase(repo).Counts(context.Background(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, opt := range repo.countOpts {
			if opt.Member != "alice" {
				t.Errorf("expected member filter, got %+v", opt)
			}
		}
	})

	t.Run("User without username", func(t *testing.T) {
		repo := &fakeRepo{counts: counts}
		out, err := newUseCase(repo).Counts(context.Background(), model.Scope{Role: model.RoleUser})
		if err != nil || out != (dashboard.CountsOutput{}) || len(repo.countOpts) != 0 {
			t.Errorf("expected zero counts without queries, got %+v %v", out, err)
		}
	})

	t.Run("Backend error", func(t *testing.T) {
		repo := &fakeRepo{countErr: errBackend}
		_, err := newUseCase(repo).Counts(context.Background(), admin)
		if !errors.Is(err, dashboard.ErrStoreUnavailable) {
			t.Errorf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestCompanyTable(t *testing.T) {
	repo := &fakeRepo{tasks: []model.TaskRecord{
		{ID: "1", TaskNo: "C-1", PartyName: "Acme", Planned3: "2024-03-01", Actual3: "2024-03-02", WebsiteLink: "https://acme.test"},
		{ID: "2", PartyName: "ACME", Planned3: "2024-03-09"},
		{ID: "3", PartyName: "Globex"},
		{ID: "4", TaskNo: "C-4", PartyName: "acme"},
	}}
	uc := newUseCase(repo)

	out, err := uc.CompanyTable(context.Background(), company)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out.Rows))
	}

	want := []struct{ taskNo, status string }{
		{"C-1", "Completed"},
		{"Task-2", "In Progress"},
		{"C-4", "Not Started"},
	}
	for i, w := range want {
		if out.Rows[i].TaskNo != w.taskNo || out.Rows[i].Status != w.status {
			t.Errorf("row %d = %s/%s, want %s/%s", i, out.Rows[i].TaskNo, out.Rows[i].Status, w.taskNo, w.status)
		}
	}
	if out.Rows[0].LinkOfSystem != "https://acme.test" || out.Rows[0].ActualSubmitDate != "2024-03-02" {
		t.Errorf("unexpected first row: %+v", out.Rows[0])
	}
	if out.Rows[2].Notes != dashboard.NotAvailable || out.Rows[2].Priority != dashboard.DefaultPriority {
		t.Errorf("expected defaults, got %+v", out.Rows[2])
	}

	empty, err := uc.CompanyTable(context.Background(), model.Scope{Role: model.RoleCompany})
	if err != nil || len(empty.Rows) != 0 {
		t.Errorf("expected no rows without a company, got %d %v", len(empty.Rows), err)
	}
}
