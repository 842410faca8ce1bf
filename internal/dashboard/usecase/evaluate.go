package usecase

import (
	"context"

	"fms-dashboard/internal/dashboard"
	"fms-dashboard/internal/model"
)

// Evaluate runs posted records through the stage and time-spent rules.
func (uc *implUseCase) Evaluate(ctx context.Context, sc model.Scope, input dashboard.EvaluateInput) (dashboard.EvaluateOutput, error) {
	if len(input.Records) == 0 {
		return dashboard.EvaluateOutput{}, dashboard.ErrNoRecords
	}

	notes, err := uc.annotate(ctx, input.Records)
	if err != nil {
		return dashboard.EvaluateOutput{}, err
	}

	out := make([]dashboard.Evaluation, len(notes))
	for i, n := range notes {
		out[i] = dashboard.Evaluation{
			Task:       input.Records[i].Label(),
			Stage:      n.stage,
			Phases:     n.phases,
			Assignment: n.assignment,
			TimeSpent:  n.timeSpent,
		}
	}
	return dashboard.EvaluateOutput{Evaluations: out}, nil
}
