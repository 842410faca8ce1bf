package timespent

import (
	"testing"
	"time"

	"fms-dashboard/internal/model"
	"fms-dashboard/pkg/trace"
	"fms-dashboard/pkg/workhours"
)

func fixedCalculator() Calculator {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC) // Tuesday
	return Calculator{
		Calendar: workhours.DefaultCalendar(time.UTC),
		Now:      func() time.Time { return now },
	}
}

func TestCompute(t *testing.T) {
	calc := fixedCalculator()

	tests := []struct {
		name string
		rec  model.TaskRecord
		want string
	}{
		{
			name: "Closed at phase three",
			rec:  model.TaskRecord{Planned3: "2024-01-01", Actual3: "2024-01-02", DurationHint2: "5h 0m"},
			want: "0h 0m",
		},
		{
			name: "Phase one hint",
			rec: model.TaskRecord{
				Planned3:      "2024-01-05",
				Actual1:       "2024-01-01T10:00:00",
				DurationHint1: "2024-01-02T12:30:00",
			},
			want: "1d 2h 30m",
		},
		{
			name: "Phase one hint is a name",
			rec: model.TaskRecord{
				Planned3:      "2024-01-05",
				Actual1:       "2024-01-01T10:00:00",
				DurationHint1: "Rahul Sharma",
			},
			want: "0h 0m",
		},
		{
			name: "Phase one hint missing actual1",
			rec:  model.TaskRecord{Planned3: "2024-01-05", DurationHint1: "2024-01-02T12:30:00"},
			want: "0h 0m",
		},
		{
			name: "Phase one hint reversed",
			rec: model.TaskRecord{
				Planned3:      "2024-01-05",
				Actual1:       "2024-01-03T10:00:00",
				DurationHint1: "2024-01-02T12:30:00",
			},
			want: "0h 0m",
		},
		{
			name: "Phase two free text",
			rec:  model.TaskRecord{Planned2: "a", Actual2: "b", Planned3: "c", DurationHint2: "3 days"},
			want: "24h 0m",
		},
		{
			name: "Phase two date hint measured to now",
			rec:  model.TaskRecord{Planned2: "a", Actual2: "b", Planned3: "c", DurationHint2: "2024-01-02T10:30:00Z"},
			want: "0d 1h 30m",
		},
		{
			name: "Phase two without hint",
			rec:  model.TaskRecord{Planned2: "a", Actual2: "b", Planned3: "c"},
			want: "0h 0m",
		},
		{
			name: "Phase two half open",
			rec:  model.TaskRecord{Planned2: "a", Planned3: "c", DurationHint2: "2h 0m"},
			want: "0h 0m",
		},
		{
			name: "Phase three not planned",
			rec:  model.TaskRecord{Planned1: "a", DurationHint2: "2h 0m"},
			want: "0h 0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Compute(tt.rec)
			if got != tt.want {
				t.Errorf("Compute() = %q, want %q", got, tt.want)
			}
			if again := calc.Compute(tt.rec); again != got {
				t.Errorf("Compute() not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestComputeRecoversFromPanic(t *testing.T) {
	calc := fixedCalculator()
	calc.Now = func() time.Time { panic("clock failure") }

	var events []trace.Event
	calc.Hook = func(e trace.Event) { events = append(events, e) }

	rec := model.TaskRecord{TaskNo: "T-3", Planned2: "a", Actual2: "b", Planned3: "c", DurationHint2: "2024-01-01T10:00:00Z"}
	if got := calc.Compute(rec); got != "0h 0m" {
		t.Errorf("Compute() = %q, want 0h 0m", got)
	}
	if len(events) != 1 || events[0].Task != "T-3" || events[0].Fields["branch"] != BranchRecovered {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestZeroCalculator(t *testing.T) {
	var calc Calculator
	rec := model.TaskRecord{
		Planned3:      "2024-01-05",
		Actual1:       "2024-01-02T11:00:00Z",
		DurationHint1: "2024-01-02T13:30:00Z",
	}
	if got := calc.Compute(rec); got != "0d 2h 30m" {
		t.Errorf("Compute() = %q", got)
	}
}

func TestMinutes(t *testing.T) {
	calc := fixedCalculator()
	rec := model.TaskRecord{
		Planned3:      "2024-01-05",
		Actual1:       "2024-01-01T10:00:00",
		DurationHint1: "2024-01-02T12:30:00",
	}
	if got := calc.Minutes(rec); got != 8*60+150 {
		t.Errorf("Minutes() = %d, want %d", got, 8*60+150)
	}
}
