// Package stage derives the workflow stage of a task from its
// planned/actual timestamp pairs.
package stage

import (
	"encoding/json"
	"fmt"
)

// Stage is a point in the three-phase workflow.
type Stage int

const (
	NotStarted Stage = iota
	Stage1
	Stage2
	Stage3
	Completed
)

var labels = [...]string{
	NotStarted: "Not Started",
	Stage1:     "Stage 1",
	Stage2:     "Stage 2",
	Stage3:     "Stage 3",
	Completed:  "Completed",
}

// All lists the stages in workflow order.
var All = []Stage{NotStarted, Stage1, Stage2, Stage3, Completed}

func (s Stage) String() string {
	if s < NotStarted || s > Completed {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return labels[s]
}

// Rank is the position in the workflow; later stages rank higher.
func (s Stage) Rank() int {
	return int(s)
}

// IsTerminal reports whether no further transition is expected.
func (s Stage) IsTerminal() bool {
	return s == Completed
}

// MarshalJSON writes the label.
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a label.
func (s *Stage) UnmarshalJSON(b []byte) error {
	var label string
	if err := json.Unmarshal(b, &label); err != nil {
		return err
	}
	parsed, ok := Parse(label)
	if !ok {
		return fmt.Errorf("unknown stage %q", label)
	}
	*s = parsed
	return nil
}

// Parse maps a label back to its stage.
func Parse(label string) (Stage, bool) {
	for _, st := range All {
		if labels[st] == label {
			return st, true
		}
	}
	return NotStarted, false
}
