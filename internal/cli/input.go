package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fms-dashboard/internal/model"
	"fms-dashboard/pkg/workhours"
)

// readInput returns the contents of args[0], or stdin when no file or "-"
// is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}

// decodeList accepts a JSON array or a single object.
func decodeList[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("no input")
	}

	if data[0] == '[' {
		var out []T
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decoding records: %w", err)
		}
		return out, nil
	}

	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	return []T{one}, nil
}

func readRecords(cmd *cobra.Command, args []string) ([]model.TaskRecord, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	return decodeList[model.TaskRecord](data)
}

func calendarFor(tz string) (workhours.Calendar, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return workhours.Calendar{}, fmt.Errorf("timezone %q: %w", tz, err)
	}
	return workhours.DefaultCalendar(loc), nil
}

// parseNow reads --now in the calendar timezone; empty means the wall clock.
func parseNow(cal workhours.Calendar, s string) (time.Time, error) {
	parser := cal.Parser()
	if s == "" {
		return time.Now().In(parser.Location()), nil
	}
	t, err := parser.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now %q: %w", s, err)
	}
	return t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
