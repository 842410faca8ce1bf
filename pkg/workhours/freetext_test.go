package workhours

import (
	"strings"
	"testing"
	"time"
)

func TestFormatFreeText(t *testing.T) {
	cal := DefaultCalendar(time.UTC)
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Already formatted", in: "2h 30m", want: "2h 30m"},
		{name: "Already long form", in: " 1d 2h 0m ", want: "1d 2h 0m"},
		{name: "Days", in: "3 days", want: "24h 0m"},
		{name: "Single day", in: "1 Day", want: "8h 0m"},
		{name: "Integer hours", in: "2", want: "2h 0m"},
		{name: "Decimal hours", in: "1.5", want: "1h 30m"},
		{name: "Hours and minutes words", in: "2 hours 15 minutes", want: "2h 15m"},
		{name: "Minutes word", in: "90 mins", want: "1h 30m"},
		{name: "Hours word", in: "3 hrs", want: "3h 0m"},
		{name: "Date", in: "2024-01-02T10:00:00Z", want: "0d 2h 0m"},
		{name: "Future date", in: "2024-01-05T10:00:00Z", want: Zero},
		{name: "Bad date", in: "2024-13-01", want: Zero},
		{name: "Unknown", in: "soon", want: Zero},
		{name: "Hours only symbol", in: "2h", want: Zero},
		{name: "Formatted with min", in: "2h 30min", want: "2h 30min"},
		{name: "Formatted with mins", in: "1d 4h 5 mins", want: "1d 4h 5 mins"},
		{name: "Huge number", in: "99999999999999999999", want: Zero},
		{name: "Number above bound", in: "2147483648", want: Zero},
		{name: "Number at bound", in: "2147483647", want: "2147483647h 0m"},
		{name: "Huge days", in: "9223372036854775807 days", want: Zero},
		{name: "Days above bound", in: "268435456 days", want: Zero},
		{name: "Days overflowing int", in: "99999999999999999999 days", want: Zero},
		{name: "Huge hours word", in: "9223372036854775807 hours", want: Zero},
		{name: "Blank", in: "   ", want: Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.FormatFreeText(tt.in, now); got != tt.want {
				t.Errorf("FormatFreeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFreeTextRulesExtensible(t *testing.T) {
	saved := FreeTextRules
	t.Cleanup(func() { FreeTextRules = saved })

	FreeTextRules = append(append([]FreeTextRule{}, saved...), FreeTextRule{
		Name:  "weeks",
		Match: func(s string) bool { return strings.HasSuffix(s, "week") },
		Format: func(c Calendar, _ string, _ time.Time) string {
			return FormatMinutes(6 * c.HoursPerDay() * 60)
		},
	})

	got := DefaultCalendar(time.UTC).FormatFreeText("1 week", time.Now())
	if got != "48h 0m" {
		t.Errorf("FormatFreeText(1 week) = %q, want 48h 0m", got)
	}
}
