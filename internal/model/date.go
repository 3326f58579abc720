package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire form of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time component. It marshals to and
// from the YYYY-MM-DD wire form.
type Date struct {
	time.Time
}

// NewDate creates a date from year, month and day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime truncates a timestamp to its calendar date.
func DateFromTime(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateFromTime(time.Now())
}

// ParseDate parses a YYYY-MM-DD string into a Date. Syntactically
// well-formed but impossible dates (month 13, day 32) are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// SameMonth reports whether the date falls in the calendar month and
// year of now.
func (d Date) SameMonth(now time.Time) bool {
	return d.Year() == now.Year() && d.Month() == now.Month()
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected YYYY-MM-DD string", data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
