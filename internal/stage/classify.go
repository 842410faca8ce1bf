package stage

import (
	"fms-dashboard/internal/model"
	"fms-dashboard/pkg/trace"
)

// rule numbers are reported in trace events; 0 is the fallback.
type rule struct {
	n     int
	stage Stage
	match func(r model.TaskRecord) bool
}

var rules = []rule{
	{1, Stage1, func(r model.TaskRecord) bool {
		return r.Planned1.Present() && r.Actual1.Empty()
	}},
	{2, Stage2, func(r model.TaskRecord) bool {
		return r.Planned1.Present() && r.Actual1.Present() && r.Planned2.Present() && r.Actual2.Empty()
	}},
	{3, Stage3, func(r model.TaskRecord) bool {
		return r.Planned2.Present() && r.Actual2.Present() && r.Planned3.Present() && r.Actual3.Empty()
	}},
	{4, Completed, func(r model.TaskRecord) bool {
		return r.Planned3.Present() && r.Actual3.Present()
	}},
}

func classify(r model.TaskRecord) (Stage, int) {
	for _, ru := range rules {
		if ru.match(r) {
			return ru.stage, ru.n
		}
	}
	return NotStarted, 0
}

// Classify returns the stage of r. The first matching rule wins; records
// matching none are NotStarted.
func Classify(r model.TaskRecord) Stage {
	st, _ := classify(r)
	return st
}

// Classifier is Classify with an optional trace hook. The zero value is
// ready to use and emits nothing.
type Classifier struct {
	Hook trace.Hook
}

// Classify returns the stage of r and emits one event when a hook is set.
func (c Classifier) Classify(r model.TaskRecord) Stage {
	st, n := classify(r)
	c.Hook.Emit(trace.Event{
		Op:   "classify",
		Task: r.Label(),
		Fields: map[string]any{
			"rule":  n,
			"stage": st.String(),
		},
	})
	return st
}
