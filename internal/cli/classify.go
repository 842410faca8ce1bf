package cli

import (
	"github.com/spf13/cobra"

	"fms-dashboard/internal/stage"
)

type classifyFlags struct {
	JSON bool
}

type classifyOutput struct {
	Task   string           `json:"task"`
	Stage  stage.Stage      `json:"stage"`
	Phases stage.PhaseFlags `json:"phases"`
}

func newClassifyCmd(_ *rootFlags) *cobra.Command {
	var flags classifyFlags

	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Show the workflow stage of each record",
		Long: `Reads task records (a JSON array or a single object) from file or stdin
and prints the derived stage and the status of the three phases.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecords(cmd, args)
			if err != nil {
				return err
			}

			out := make([]classifyOutput, len(records))
			for i, r := range records {
				st := stage.Classify(r)
				out[i] = classifyOutput{Task: label(r.Label(), i), Stage: st, Phases: stage.Phases(st)}
			}

			if flags.JSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			t := table{headers: []string{"TASK", "STAGE", "PHASE 1", "PHASE 2", "PHASE 3"}}
			for _, o := range out {
				t.add(o.Task, renderStage(o.Stage), string(o.Phases.Stage1), string(o.Phases.Stage2), string(o.Phases.Stage3))
			}
			return t.write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Output as JSON")
	return cmd
}

// label falls back to the record position when the record has no identity.
func label(l string, i int) string {
	if l != "" {
		return l
	}
	return "#" + itoa(i+1)
}
