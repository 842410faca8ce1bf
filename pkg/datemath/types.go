package datemath

import (
	"errors"
	"regexp"
	"time"
)

// ErrUnrecognizedDate is returned when no supported layout matches the input.
var ErrUnrecognizedDate = errors.New("unrecognized date")

// zonedLayouts carry their own offset; the parser location is ignored for them.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02T15:04:05.999999999-07",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RubyDate,
	time.UnixDate,
}

// localLayouts have no zone and are read in the parser location.
// Slash dates are day-first, the format the dashboard writes back.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006",
	time.ANSIC,
	"Mon Jan 2 2006",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// nameLike matches strings made only of letters and spaces, e.g. a person
// name stored in a date column.
var nameLike = regexp.MustCompile(`^[A-Za-z\s]+$`)

// ParseResult holds the result of parsing a relative date string.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}
