package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/dashboard/usecase"
	"fms-dashboard/internal/model"
	"fms-dashboard/internal/stage"
	"fms-dashboard/internal/timespent"
	"fms-dashboard/pkg/datemath"
	"fms-dashboard/pkg/workhours"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fixedNow is Tuesday 5 March 2024, noon UTC.
var fixedNow = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

// fakeRepo serves canned rows and records what it was asked.
type fakeRepo struct {
	mu        sync.Mutex
	tasks     []model.TaskRecord
	members   []model.DropdownEntry
	listErr   error
	countErr  error
	counts    func(opt repository.CountTasksOptions) int
	listOpts  []repository.ListTasksOptions
	countOpts []repository.CountTasksOptions
	updates   []repository.UpdateTaskOptions
	lookups   int
}

func (f *fakeRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.TaskRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listOpts = append(f.listOpts, opt)
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.TaskRecord, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeRepo) CountTasks(ctx context.Context, opt repository.CountTasksOptions) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countOpts = append(f.countOpts, opt)
	if f.countErr != nil {
		return 0, f.countErr
	}
	if f.counts == nil {
		return 0, nil
	}
	return f.counts(opt), nil
}

func (f *fakeRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, opt)
	for _, r := range f.tasks {
		if r.TaskNo.Trim() == opt.TaskNo {
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeRepo) ListMembers(ctx context.Context) ([]model.DropdownEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.members, nil
}

func (f *fakeRepo) FindTeamName(ctx context.Context, member string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	for _, m := range f.members {
		if strings.EqualFold(m.MemberName.Trim(), member) {
			return m.TeamName.Trim(), nil
		}
	}
	return "", nil
}

var errBackend = errors.New("backend down")

func newUseCase(repo *fakeRepo) dashboard.UseCase {
	cal := workhours.DefaultCalendar(time.UTC)
	calc := timespent.New(cal, nil)
	calc.Now = func() time.Time { return fixedNow }
	return usecase.New(&mockLogger{}, repo, calc, stage.Classifier{}, datemath.NewParserIn(time.UTC), usecase.NewTeamCache(16, time.Minute))
}

var (
	admin   = model.Scope{Role: model.RoleAdmin, Username: "admin"}
	company = model.Scope{Role: model.RoleCompany, CompanyName: "acme"}
	user    = model.Scope{Role: model.RoleUser, Username: "alice"}
)
