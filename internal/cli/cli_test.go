package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/dashboard/repository/sqlite"
	"fms-dashboard/pkg/log"
)

const records = `[
  {"task_no": "T-1", "planned1": "2024-01-01", "actual1": ""},
  {"task_no": "T-2", "planned3": "2024-01-05", "actual1": "2024-01-01T10:00:00", "how_many_time_take": "2024-01-02T12:30:00"},
  {"id": 7, "planned3": "2024-01-03", "actual3": "2024-01-04"},
  {}
]`

// run executes fmsctl with --no-color appended and returns stdout, stderr
// and the exit code.
func run(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(append(args, "--no-color"), strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestClassifyJSON(t *testing.T) {
	out, errOut, code := run(t, records, "classify", "--json")
	require.Equal(t, 0, code, errOut)

	var got []struct {
		Task   string            `json:"task"`
		Stage  string            `json:"stage"`
		Phases map[string]string `json:"phases"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)

	assert.Equal(t, "T-1", got[0].Task)
	assert.Equal(t, "Stage 1", got[0].Stage)
	assert.Equal(t, "Active", got[0].Phases["stage1"])
	assert.Equal(t, "Stage 3", got[1].Stage)
	assert.Equal(t, "#7", got[2].Task)
	assert.Equal(t, "Completed", got[2].Stage)
	assert.Equal(t, "#4", got[3].Task)
	assert.Equal(t, "Not Started", got[3].Stage)
}

func TestClassifyTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"task_no":"T-9","planned1":"x","actual1":"y","planned2":"z"}`), 0o600))

	out, errOut, code := run(t, "", "classify", path)
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "TASK")
	assert.Contains(t, lines[0], "PHASE 3")
	assert.Contains(t, lines[1], "T-9")
	assert.Contains(t, lines[1], "Stage 2")
}

func TestTimeSpent(t *testing.T) {
	out, errOut, code := run(t, records, "timespent", "--json", "--tz", "UTC", "--now", "2024-01-02T12:00:00Z")
	require.Equal(t, 0, code, errOut)

	var got []struct {
		Task      string `json:"task"`
		TimeSpent string `json:"time_spent"`
		Minutes   int    `json:"minutes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)

	assert.Equal(t, "1d 2h 30m", got[1].TimeSpent)
	assert.Equal(t, 630, got[1].Minutes)
	assert.Equal(t, "0h 0m", got[2].TimeSpent)
	assert.Equal(t, 0, got[2].Minutes)
}

func TestWorkHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "Sunday skipped", start: "2024-01-06T17:00:00", end: "2024-01-08T11:00:00", want: "0d 2h 0m"},
		{name: "Same day", start: "2024-01-02T11:00:00", end: "2024-01-02T13:30:00", want: "0d 2h 30m"},
		{name: "Clamped", start: "2024-01-02T08:00:00", end: "2024-01-02T20:00:00", want: "1d 0h 0m"},
		{name: "Reversed", start: "2024-01-03T10:00:00", end: "2024-01-02T10:00:00", want: "0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := run(t, "", "workhours", tt.start, tt.end, "--tz", "UTC")
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestFreeText(t *testing.T) {
	out, errOut, code := run(t, "", "freetext", "2", "hours", "30", "minutes", "--tz", "UTC")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "2h 30m", strings.TrimSpace(out))

	out, _, _ = run(t, "", "freetext", "3 days", "--tz", "UTC")
	assert.Equal(t, "24h 0m", strings.TrimSpace(out))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "Bad timezone", args: []string{"workhours", "a", "b", "--tz", "Mars/Base"}},
		{name: "Bad now", stdin: records, args: []string{"timespent", "--now", "someday"}},
		{name: "Bad JSON", stdin: `{"task_no":`, args: []string{"classify"}},
		{name: "Empty input", stdin: "  ", args: []string{"classify"}},
		{name: "Missing file", args: []string{"classify", "/nonexistent/records.json"}},
		{name: "Wrong arg count", args: []string{"workhours", "only-one"}},
		{name: "Nothing to import", args: []string{"import"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, code := run(t, tt.stdin, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, "error: ")
		})
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	tasks := filepath.Join(dir, "fms.json")
	members := filepath.Join(dir, "dropdown.json")
	db := filepath.Join(dir, "nested", "fms.db")

	require.NoError(t, os.WriteFile(tasks, []byte(records), 0o600))
	require.NoError(t, os.WriteFile(members, []byte(`[{"member_name":"Alice","team_name":"Core"}]`), 0o600))

	out, errOut, code := run(t, "", "import", "--db", db, "--tasks", tasks, "--members", members)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "4 tasks")
	assert.Contains(t, out, "1 members")

	ctx := context.Background()
	conn, err := sqlite.Open(ctx, db)
	require.NoError(t, err)
	defer conn.Close()
	store := sqlite.New(conn, log.NewNop())

	got, err := store.ListTasks(ctx, repository.ListTasksOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 4)

	team, err := store.FindTeamName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Core", team)
}
