package workhours

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Span is an amount of working time.
type Span struct {
	Minutes     int
	HoursPerDay int
}

// Days, Hours and Mins split the span into working days of HoursPerDay.
func (s Span) Days() int {
	if s.HoursPerDay <= 0 {
		return 0
	}
	return (s.Minutes / 60) / s.HoursPerDay
}

func (s Span) Hours() int {
	if s.HoursPerDay <= 0 {
		return s.Minutes / 60
	}
	return (s.Minutes / 60) % s.HoursPerDay
}

func (s Span) Mins() int {
	return s.Minutes % 60
}

// String renders the long form "{d}d {h}h {m}m".
func (s Span) String() string {
	return fmt.Sprintf("%dd %dh %dm", s.Days(), s.Hours(), s.Mins())
}

var (
	hoursRe   = regexp.MustCompile(`(\d+)\s*h`)
	minutesRe = regexp.MustCompile(`(\d+)\s*m`)
	daysRe    = regexp.MustCompile(`(\d+)\s*d`)
	bareIntRe = regexp.MustCompile(`^\d+$`)
)

// ParseMinutes reads "Xh Ym" style text into minutes. The first "<n>h" and
// "<n>m" are summed; a bare integer is taken as hours. Day components are
// ignored.
func ParseMinutes(s string) int {
	total := firstInt(hoursRe, s)*60 + firstInt(minutesRe, s)
	if total == 0 {
		t := strings.TrimSpace(s)
		if bareIntRe.MatchString(t) {
			n, _ := strconv.Atoi(t)
			return n * 60
		}
	}
	return total
}

// SpanMinutes is ParseMinutes plus a "<n>d" component counted as working
// days of hoursPerDay. It orders long-form and short-form strings correctly.
func SpanMinutes(s string, hoursPerDay int) int {
	return ParseMinutes(s) + firstInt(daysRe, s)*hoursPerDay*60
}

// FormatMinutes renders the short form "{h}h {m}m". Negative input is zero.
func FormatMinutes(n int) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%dh %dm", n/60, n%60)
}

func firstInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
