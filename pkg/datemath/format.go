package datemath

import (
	"strings"
	"time"
)

const (
	displayDate     = "02/01/2006"
	displayDateTime = "02/01/2006 15:04"
)

// FormatDate renders t as DD/MM/YYYY in the parser location.
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format(displayDate)
}

// FormatDateTime renders t as DD/MM/YYYY HH:MM in the parser location.
func (p *Parser) FormatDateTime(t time.Time) string {
	return t.In(p.location).Format(displayDateTime)
}

// DisplayDate reformats a stored date as DD/MM/YYYY. Blank input yields
// fallback; unparsable input is returned trimmed and unchanged.
func (p *Parser) DisplayDate(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	t, err := p.ParseDate(s)
	if err != nil {
		return s
	}
	return p.FormatDate(t)
}

// DisplayDateTime reformats a stored timestamp as DD/MM/YYYY HH:MM. Blank
// input yields "", unparsable input is returned unchanged.
func (p *Parser) DisplayDateTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := p.ParseDate(s)
	if err != nil {
		return s
	}
	return p.FormatDateTime(t)
}
