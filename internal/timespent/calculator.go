// Package timespent computes the working time spent on an open task.
package timespent

import (
	"time"

	"fms-dashboard/internal/model"
	"fms-dashboard/pkg/datemath"
	"fms-dashboard/pkg/trace"
	"fms-dashboard/pkg/workhours"
)

// Branches reported in trace events.
const (
	BranchClosed       = "closed"
	BranchPhaseOneHint = "phase1-hint"
	BranchPhaseTwoHint = "phase2-hint"
	BranchNoData       = "no-data"
	BranchRecovered    = "recovered"
)

// Calculator computes time spent. The zero value uses time.Now and the
// default calendar in UTC.
type Calculator struct {
	Calendar workhours.Calendar
	Now      func() time.Time
	Hook     trace.Hook
}

// New returns a calculator for cal.
func New(cal workhours.Calendar, hook trace.Hook) Calculator {
	return Calculator{Calendar: cal, Now: time.Now, Hook: hook}
}

func (c Calculator) calendar() workhours.Calendar {
	if c.Calendar.EndHour == 0 && c.Calendar.StartHour == 0 {
		return workhours.DefaultCalendar(c.Calendar.Location)
	}
	return c.Calendar
}

func (c Calculator) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Compute returns the time spent on r, or workhours.Zero when it cannot be
// derived. It never panics.
func (c Calculator) Compute(r model.TaskRecord) (result string) {
	branch := BranchNoData
	defer func() {
		if p := recover(); p != nil {
			result, branch = workhours.Zero, BranchRecovered
		}
		c.Hook.Emit(trace.Event{
			Op:     "timespent",
			Task:   r.Label(),
			Fields: map[string]any{"branch": branch, "result": result},
		})
	}()

	switch {
	case r.Planned3.Present() && r.Actual3.Present():
		branch = BranchClosed
		return workhours.Zero

	case r.Planned3.Present():
		if r.Planned2.Empty() && r.Actual2.Empty() {
			branch = BranchPhaseOneHint
			start, end := r.Actual1.Trim(), r.DurationHint1.Trim()
			if !datemath.IsValidDateString(start) || !datemath.IsValidDateString(end) {
				return workhours.Zero
			}
			return c.calendar().WorkingDiff(start, end)
		}
		if r.Planned2.Present() && r.Actual2.Present() {
			branch = BranchPhaseTwoHint
			if r.DurationHint2.Empty() {
				return workhours.Zero
			}
			return c.calendar().FormatFreeText(r.DurationHint2.Trim(), c.now())
		}
	}
	return workhours.Zero
}

// Minutes returns the Compute result as working minutes, counting a long-form
// day as one window length.
func (c Calculator) Minutes(r model.TaskRecord) int {
	return c.SpanMinutes(c.Compute(r))
}

// SpanMinutes converts a Compute result to working minutes.
func (c Calculator) SpanMinutes(s string) int {
	return workhours.SpanMinutes(s, c.calendar().HoursPerDay())
}
