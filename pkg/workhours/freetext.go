package workhours

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FreeTextRule converts one shape of free-text duration. Match sees the
// trimmed input.
type FreeTextRule struct {
	Name   string
	Match  func(s string) bool
	Format func(c Calendar, s string, now time.Time) string
}

var (
	formattedRe = regexp.MustCompile(`(?i)^(\d+d\s*)?\d+\s*h\s*\d+\s*m(?:ins?)?$`)
	daysTextRe  = regexp.MustCompile(`(?i)(\d+)\s*days?`)
	numberRe    = regexp.MustCompile(`^\d+(\.\d+)?$`)
	compositeRe = regexp.MustCompile(`(?i)^(?:(\d+)\s*(?:hours?|hrs?))?\s*(?:(\d+)\s*(?:minutes?|mins?))?$`)
)

// maxHours bounds every parsed amount so hour and minute arithmetic stays
// non-negative.
const maxHours = math.MaxInt32

// FreeTextRules are tried in order; the first match wins. Append to support
// further formats.
var FreeTextRules = []FreeTextRule{
	{
		Name:  "formatted",
		Match: formattedRe.MatchString,
		Format: func(_ Calendar, s string, _ time.Time) string {
			return s
		},
	},
	{
		Name: "days",
		Match: func(s string) bool {
			return strings.Contains(strings.ToLower(s), "day") && daysTextRe.MatchString(s)
		},
		Format: func(c Calendar, s string, _ time.Time) string {
			days, err := strconv.Atoi(daysTextRe.FindStringSubmatch(s)[1])
			hpd := c.HoursPerDay()
			if err != nil || hpd <= 0 || days > maxHours/hpd {
				return Zero
			}
			return fmt.Sprintf("%dh 0m", days*hpd)
		},
	},
	{
		Name:  "number",
		Match: numberRe.MatchString,
		Format: func(_ Calendar, s string, _ time.Time) string {
			hours, err := strconv.ParseFloat(s, 64)
			if err != nil || hours > maxHours {
				return Zero
			}
			whole := math.Floor(hours)
			return fmt.Sprintf("%dh %dm", int(whole), int(math.Floor((hours-whole)*60)))
		},
	},
	{
		Name: "hours-minutes",
		Match: func(s string) bool {
			m := compositeRe.FindStringSubmatch(s)
			return m != nil && (m[1] != "" || m[2] != "")
		},
		Format: func(_ Calendar, s string, _ time.Time) string {
			m := compositeRe.FindStringSubmatch(s)
			h, _ := strconv.Atoi(m[1])
			mins, _ := strconv.Atoi(m[2])
			if h > maxHours || mins > maxHours*60 {
				return Zero
			}
			return FormatMinutes(h*60 + mins)
		},
	},
	{
		Name: "date",
		Match: func(s string) bool {
			return strings.ContainsAny(s, "T-")
		},
		Format: func(c Calendar, s string, now time.Time) string {
			return c.WorkingDiffUntil(s, now)
		},
	},
}

// FormatFreeText normalises a user-entered duration hint. A date is read as
// a start time and measured in working hours up to now. Anything
// unrecognised yields Zero.
func (c Calendar) FormatFreeText(s string, now time.Time) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero
	}
	for _, rule := range FreeTextRules {
		if rule.Match(s) {
			return rule.Format(c, s, now)
		}
	}
	return Zero
}
