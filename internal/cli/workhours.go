package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWorkHoursCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "workhours START END",
		Short: "Working time between two instants",
		Long: `Prints the working time between START and END as "Nd Nh Nm", counting
10:00-18:00 Monday to Saturday in the --tz timezone.`,
		Example: `  fmsctl workhours 2024-01-06T17:00:00 2024-01-08T11:00:00 --tz UTC`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendarFor(root.Timezone)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), valueStyle.Render(cal.WorkingDiff(args[0], args[1])))
			return err
		},
	}
}
