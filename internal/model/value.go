package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Value is a nullable column value kept in its string form. Numbers and
// booleans are stored as their text; null and non-scalar input are empty.
type Value string

// String returns the raw form.
func (v Value) String() string {
	return string(v)
}

// Trim returns the form with surrounding whitespace removed.
func (v Value) Trim() string {
	return strings.TrimSpace(string(v))
}

// Present reports whether v carries anything besides whitespace.
func (v Value) Present() bool {
	return v.Trim() != ""
}

// Empty is the negation of Present.
func (v Value) Empty() bool {
	return !v.Present()
}

// Or returns the trimmed value, or def when v is empty.
func (v Value) Or(def string) string {
	if v.Empty() {
		return def
	}
	return v.Trim()
}

// Present is the single presence predicate used across the dashboard.
func Present(v Value) bool {
	return v.Present()
}

// UnmarshalJSON never fails on well-formed JSON; values without a scalar
// string form decode to empty.
func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		*v = ""
		return nil
	}

	switch t := raw.(type) {
	case string:
		*v = Value(t)
	case json.Number:
		*v = Value(t.String())
	case bool:
		*v = Value(strconv.FormatBool(t))
	default:
		*v = ""
	}
	return nil
}

// MarshalJSON writes empty values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(v))
}

// Scan implements sql.Scanner.
func (v *Value) Scan(src any) error {
	switch t := src.(type) {
	case nil:
		*v = ""
	case string:
		*v = Value(t)
	case []byte:
		*v = Value(string(t))
	case int64:
		*v = Value(strconv.FormatInt(t, 10))
	case float64:
		*v = Value(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		*v = Value(strconv.FormatBool(t))
	case time.Time:
		*v = Value(t.Format(time.RFC3339))
	default:
		*v = ""
	}
	return nil
}

// Value implements driver.Valuer; empty values are stored as NULL.
func (v Value) Value() (driver.Value, error) {
	if v == "" {
		return nil, nil
	}
	return string(v), nil
}
