package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValueUnmarshalJSON(t *testing.T) {
	input := `{
		"id": 42,
		"task_no": "TN-7",
		"planned1": "2024-01-01T10:00:00Z",
		"actual1": null,
		"planned2": "   ",
		"status": true,
		"notes": {"nested": 1},
		"remarks": [1, 2],
		"how_many_time_take": 1.5
	}`

	var rec TaskRecord
	if err := json.Unmarshal([]byte(input), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	checks := []struct {
		name string
		got  Value
		want Value
	}{
		{"number", rec.ID, "42"},
		{"string", rec.TaskNo, "TN-7"},
		{"null", rec.Actual1, ""},
		{"bool", rec.Status, "true"},
		{"object", rec.Notes, ""},
		{"array", rec.Remarks, ""},
		{"decimal", rec.DurationHint1, "1.5"},
		{"missing", rec.Actual3, ""},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, c.got, c.want)
		}
	}

	if rec.Planned2.Present() {
		t.Errorf("whitespace value should not be present")
	}
	if !Present(rec.Planned1) {
		t.Errorf("planned1 should be present")
	}
}

func TestValueMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A Value `json:"a"`
		B Value `json:"b"`
	}{A: "x"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `{"a":"x","b":null}` {
		t.Errorf("Marshal() = %s", b)
	}
}

func TestValueScan(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		src  any
		want Value
	}{
		{nil, ""},
		{"abc", "abc"},
		{[]byte("bytes"), "bytes"},
		{int64(7), "7"},
		{float64(2.5), "2.5"},
		{false, "false"},
		{ts, "2024-03-01T10:00:00Z"},
		{struct{}{}, ""},
	}

	for _, tt := range tests {
		var v Value
		if err := v.Scan(tt.src); err != nil {
			t.Fatalf("Scan(%v) error = %v", tt.src, err)
		}
		if v != tt.want {
			t.Errorf("Scan(%v) = %q, want %q", tt.src, v, tt.want)
		}
	}
}

func TestValueOr(t *testing.T) {
	if got := Value("  x ").Or("N/A"); got != "x" {
		t.Errorf("Or() = %q", got)
	}
	if got := Value(" ").Or("N/A"); got != "N/A" {
		t.Errorf("Or() = %q", got)
	}
}

func TestScanTargetsMatchColumns(t *testing.T) {
	var rec TaskRecord
	if got, want := len(rec.ScanTargets()), len(TaskColumns); got != want {
		t.Fatalf("ScanTargets() has %d entries, TaskColumns has %d", got, want)
	}
	if !IsTaskColumn("actual3") || IsTaskColumn("drop table") {
		t.Errorf("IsTaskColumn() mismatch")
	}
}

func TestLabel(t *testing.T) {
	if got := (TaskRecord{TaskNo: " T-1 ", ID: "9"}).Label(); got != "T-1" {
		t.Errorf("Label() = %q", got)
	}
	if got := (TaskRecord{ID: "9"}).Label(); got != "#9" {
		t.Errorf("Label() = %q", got)
	}
}
