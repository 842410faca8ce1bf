package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"fms-dashboard/internal/timespent"
)

type timeSpentFlags struct {
	Now  string
	JSON bool
}

type timeSpentOutput struct {
	Task      string `json:"task"`
	TimeSpent string `json:"time_spent"`
	Minutes   int    `json:"minutes"`
}

func newTimeSpentCmd(root *rootFlags) *cobra.Command {
	var flags timeSpentFlags

	cmd := &cobra.Command{
		Use:   "timespent [file]",
		Short: "Show time spent per record in working hours",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendarFor(root.Timezone)
			if err != nil {
				return err
			}
			now, err := parseNow(cal, flags.Now)
			if err != nil {
				return err
			}
			records, err := readRecords(cmd, args)
			if err != nil {
				return err
			}

			calc := timespent.Calculator{Calendar: cal, Now: func() time.Time { return now }}
			out := make([]timeSpentOutput, len(records))
			for i, r := range records {
				spent := calc.Compute(r)
				out[i] = timeSpentOutput{Task: label(r.Label(), i), TimeSpent: spent, Minutes: calc.SpanMinutes(spent)}
			}

			if flags.JSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			t := table{headers: []string{"TASK", "TIME SPENT", "MINUTES"}}
			for _, o := range out {
				t.add(o.Task, valueStyle.Render(o.TimeSpent), itoa(o.Minutes))
			}
			return t.write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.Now, "now", "", "Evaluate as of this instant instead of the current time")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Output as JSON")
	return cmd
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
