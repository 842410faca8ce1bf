package stage

// PhaseStatus is the state of one workflow phase relative to a stage.
type PhaseStatus string

const (
	PhasePending   PhaseStatus = "Pending"
	PhaseActive    PhaseStatus = "Active"
	PhaseCompleted PhaseStatus = "Completed"
)

// PhaseFlags holds the status of the three phases.
type PhaseFlags struct {
	Stage1 PhaseStatus `json:"stage1"`
	Stage2 PhaseStatus `json:"stage2"`
	Stage3 PhaseStatus `json:"stage3"`
}

// Phases derives the per-phase status for s.
func Phases(s Stage) PhaseFlags {
	return PhaseFlags{
		Stage1: phase(s, Stage1),
		Stage2: phase(s, Stage2),
		Stage3: phase(s, Stage3),
	}
}

func phase(s, k Stage) PhaseStatus {
	switch {
	case s.Rank() > k.Rank():
		return PhaseCompleted
	case s == k:
		return PhaseActive
	default:
		return PhasePending
	}
}
