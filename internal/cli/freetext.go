package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFreeTextCmd(root *rootFlags) *cobra.Command {
	var now string

	cmd := &cobra.Command{
		Use:     "freetext TEXT...",
		Short:   "Normalise a free-text duration",
		Example: `  fmsctl freetext 2 hours 30 minutes`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendarFor(root.Timezone)
			if err != nil {
				return err
			}
			at, err := parseNow(cal, now)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), valueStyle.Render(cal.FormatFreeText(strings.Join(args, " "), at)))
			return err
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "Measure date inputs up to this instant")
	return cmd
}
