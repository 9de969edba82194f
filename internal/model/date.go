package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Date is a calendar date as stored on an assignment.
//
// A Date loaded from storage may carry only Raw text when the stored value
// could not be parsed as a date. Such a Date is not Valid and date arithmetic
// on it must be guarded by the caller.
type Date struct {
	Time time.Time
	Raw  string
}

// NewDate wraps a time value.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// RawDate wraps unparsed text.
func RawDate(raw string) Date {
	return Date{Raw: raw}
}

// Valid reports whether the date holds a real time value.
func (d Date) Valid() bool {
	return !d.Time.IsZero()
}

// IsZero reports whether the date is entirely unset.
func (d Date) IsZero() bool {
	return d.Time.IsZero() && d.Raw == ""
}

// Equal reports whether two dates hold the same instant or the same raw text.
func (d Date) Equal(other Date) bool {
	if d.Valid() || other.Valid() {
		return d.Time.Equal(other.Time)
	}
	return d.Raw == other.Raw
}

// Before orders dates for sorting. Invalid dates sort after valid ones.
func (d Date) Before(other Date) bool {
	switch {
	case d.Valid() && other.Valid():
		return d.Time.Before(other.Time)
	case d.Valid():
		return true
	default:
		return false
	}
}

// String formats the date for display in local time.
func (d Date) String() string {
	if d.Valid() {
		return d.Time.Local().Format("2006-01-02")
	}
	return d.Raw
}

// MarshalJSON encodes a valid date as an ISO-8601 UTC timestamp, raw text as
// itself, and an unset date as null.
func (d Date) MarshalJSON() ([]byte, error) {
	switch {
	case d.Valid():
		return json.Marshal(d.Time.UTC().Format(time.RFC3339Nano))
	case d.Raw != "":
		return json.Marshal(d.Raw)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts an ISO-8601 timestamp string, any other string
// (kept as Raw), or null. Any other JSON value is kept as Raw in its JSON
// text, so one odd record cannot fail the list around it.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{Raw: string(bytes.TrimSpace(data))}
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*d = Date{Time: t}
		return nil
	}
	*d = Date{Raw: s}
	return nil
}
