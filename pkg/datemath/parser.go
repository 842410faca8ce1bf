package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts date strings, absolute or relative, into time.Time values
// in a fixed location.
type Parser struct {
	location *time.Location
}

var utcParser = &Parser{location: time.UTC}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser bound to loc. A nil loc means UTC.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser location.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate parses an absolute date or timestamp. Inputs without an offset
// are read in the parser location.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnrecognizedDate
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(p.location), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, s)
}

// IsValidDateString reports whether s looks like a date rather than a name
// and parses as one.
func (p *Parser) IsValidDateString(s string) bool {
	s = strings.TrimSpace(s)
	if nameLike.MatchString(s) {
		return false
	}
	_, err := p.ParseDate(s)
	return err == nil
}

// IsValidDateString is Parser.IsValidDateString with a UTC parser; validity
// does not depend on location.
func IsValidDateString(s string) bool {
	return utcParser.IsValidDateString(s)
}

// ParseRange resolves a date expression that may be absolute ("2024-03-01")
// or relative ("today", "in 7 days", "next monday").
func (p *Parser) ParseRange(expr string, baseTime time.Time) (time.Time, error) {
	if t, err := p.ParseDate(expr); err == nil {
		return t, nil
	}
	return p.Parse(expr, baseTime)
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Handle "X days/weeks ago"
	if strings.HasSuffix(relative, " ago") {
		return p.parseAgo(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unsupported date expression: %q", relative)
}

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	agoRe        = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
)

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}
	amount, _ := strconv.Atoi(matches[1])
	return p.shift(baseTime, amount, matches[2])
}

// parseAgo handles patterns like "3 days ago", "2 weeks ago".
func (p *Parser) parseAgo(relative string, baseTime time.Time) (time.Time, error) {
	matches := agoRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}
	amount, _ := strconv.Atoi(matches[1])
	return p.shift(baseTime, -amount, matches[2])
}

func (p *Parser) shift(baseTime time.Time, amount int, unit string) (time.Time, error) {
	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
