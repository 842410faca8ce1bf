package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fms-dashboard/internal/dashboard/repository/sqlite"
	"fms-dashboard/internal/model"
	"fms-dashboard/pkg/log"
)

type importFlags struct {
	DB      string
	Tasks   string
	Members string
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load tasks and dropdown members into a SQLite store",
		Long: `Creates the SQLite store used by the sqlite driver when missing and appends
the task records and dropdown members read from JSON files.`,
		Example: `  fmsctl import --db data/fms.db --tasks fms.json --members dropdown.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.Tasks == "" && flags.Members == "" {
				return fmt.Errorf("nothing to import: pass --tasks and/or --members")
			}

			ctx := cmd.Context()
			db, err := sqlite.Open(ctx, flags.DB)
			if err != nil {
				return err
			}
			defer db.Close()
			store := sqlite.New(db, log.NewNop())

			out := cmd.OutOrStdout()
			if flags.Tasks != "" {
				records, err := readFile[model.TaskRecord](flags.Tasks)
				if err != nil {
					return err
				}
				n, err := store.ImportTasks(ctx, records)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s tasks\n", mutedStyle.Render("imported"), valueStyle.Render(itoa(n)))
			}

			if flags.Members != "" {
				members, err := readFile[model.DropdownEntry](flags.Members)
				if err != nil {
					return err
				}
				n, err := store.ImportMembers(ctx, members)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s members\n", mutedStyle.Render("imported"), valueStyle.Render(itoa(n)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.DB, "db", "data/fms.db", "SQLite database path")
	cmd.Flags().StringVar(&flags.Tasks, "tasks", "", "JSON file of task records")
	cmd.Flags().StringVar(&flags.Members, "members", "", "JSON file of dropdown members")
	return cmd
}

func readFile[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return decodeList[T](data)
}
