// Package cli implements fmsctl, a command-line front end to the stage and
// working-hours rules of the dashboard.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

const defaultTimezone = "Asia/Kolkata"

// rootFlags holds the persistent flag values shared by every subcommand.
type rootFlags struct {
	NoColor  bool
	Timezone string
}

// NewRootCmd builds a fresh command tree. Tests build their own so flag state
// never leaks between runs.
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "fmsctl",
		Short: "Inspect FMS task records from the command line",
		Long: `fmsctl applies the dashboard rules to task records read from a JSON file
or stdin: stage classification, time spent in working hours, working-hours
differences and free-text duration formatting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("no-color") && os.Getenv("NO_COLOR") != "" {
				flags.NoColor = true
			}
			if !cmd.Flags().Changed("tz") {
				if tz := os.Getenv("DASHBOARD_TIMEZONE"); tz != "" {
					flags.Timezone = tz
				}
			}
			if flags.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output (env: NO_COLOR)")
	cmd.PersistentFlags().StringVar(&flags.Timezone, "tz", defaultTimezone, "IANA timezone of the working calendar (env: DASHBOARD_TIMEZONE)")

	cmd.AddCommand(
		newClassifyCmd(&flags),
		newTimeSpentCmd(&flags),
		newWorkHoursCmd(&flags),
		newFreeTextCmd(&flags),
		newImportCmd(),
	)
	return cmd
}

// Execute runs the command tree against the process streams and returns the
// exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("error: ")+err.Error())
		return 1
	}
	return 0
}
