// Package workhours does business-hours arithmetic: elapsed working time
// between two instants inside a daily window, skipping off days.
package workhours

import (
	"time"

	"fms-dashboard/pkg/datemath"
)

const (
	DefaultStartHour = 10
	DefaultEndHour   = 18

	// Zero is the short-form result for every invalid input.
	Zero = "0h 0m"
)

// Calendar describes the working window. Hours are wall-clock hours in Location.
type Calendar struct {
	Location  *time.Location
	StartHour int
	EndHour   int
	OffDays   []time.Weekday
}

// DefaultCalendar is 10:00-18:00, Monday to Saturday, in loc.
func DefaultCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{
		Location:  loc,
		StartHour: DefaultStartHour,
		EndHour:   DefaultEndHour,
		OffDays:   []time.Weekday{time.Sunday},
	}
}

// HoursPerDay is the window length; it is also the size of one working day
// in long-form output.
func (c Calendar) HoursPerDay() int {
	if c.EndHour <= c.StartHour {
		return 0
	}
	return c.EndHour - c.StartHour
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c Calendar) isOff(d time.Weekday) bool {
	for _, off := range c.OffDays {
		if off == d {
			return true
		}
	}
	return false
}

// Parser returns the date parser bound to the calendar location.
func (c Calendar) Parser() *datemath.Parser {
	return datemath.NewParserIn(c.location())
}

// Between sums the working time in [start, end]. The result is empty when
// start is not before end.
func (c Calendar) Between(start, end time.Time) Span {
	span := Span{HoursPerDay: c.HoursPerDay()}
	if !start.Before(end) || span.HoursPerDay == 0 {
		return span
	}

	loc := c.location()
	window := time.Duration(span.HoursPerDay) * time.Hour
	s, e := start.In(loc), end.In(loc)
	last := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, loc)

	var total time.Duration
	for day := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc); !day.After(last); day = day.AddDate(0, 0, 1) {
		if c.isOff(day.Weekday()) {
			continue
		}
		open := time.Date(day.Year(), day.Month(), day.Day(), c.StartHour, 0, 0, 0, loc)
		closing := time.Date(day.Year(), day.Month(), day.Day(), c.EndHour, 0, 0, 0, loc)

		from, to := maxTime(s, open), minTime(e, closing)
		if !from.Before(to) {
			continue
		}
		total += min(to.Sub(from), window)
	}

	span.Minutes = int(total / time.Minute)
	return span
}

// WorkingDiff parses both endpoints and returns the long-form working time
// between them. Unparsable input or start >= end yields Zero.
func (c Calendar) WorkingDiff(start, end string) string {
	p := c.Parser()
	s, err := p.ParseDate(start)
	if err != nil {
		return Zero
	}
	e, err := p.ParseDate(end)
	if err != nil {
		return Zero
	}
	return c.diff(s, e)
}

// WorkingDiffUntil is WorkingDiff with a fixed end instant.
func (c Calendar) WorkingDiffUntil(start string, end time.Time) string {
	s, err := c.Parser().ParseDate(start)
	if err != nil {
		return Zero
	}
	return c.diff(s, end)
}

func (c Calendar) diff(s, e time.Time) string {
	if !s.Before(e) {
		return Zero
	}
	return c.Between(s, e).String()
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
