package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. It marshals as
// "YYYY-MM-DD", matching the HR API wire format.
type Date struct {
	t time.Time
}

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// Time exposes the underlying midnight-UTC instant, mainly for database
// drivers.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(days int) Date {
	return DateOf(d.t.AddDate(0, 0, days))
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted "YYYY-MM-DD" string or JSON null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
