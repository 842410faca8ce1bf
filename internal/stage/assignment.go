package stage

import "fms-dashboard/internal/model"

// AssignmentStatus is the developer-board view of a task.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentCompleted AssignmentStatus = "completed"
)

// AssignmentOf derives the status from the first two phases; a non-empty
// status column wins over the derived value.
func AssignmentOf(r model.TaskRecord) AssignmentStatus {
	if r.Status.Present() {
		return AssignmentStatus(r.Status.Trim())
	}

	planned := r.Planned1.Present() || r.Planned2.Present()
	actual := r.Actual1.Present() || r.Actual2.Present()

	switch {
	case planned && actual:
		return AssignmentCompleted
	case planned:
		return AssignmentAssigned
	default:
		return AssignmentPending
	}
}
