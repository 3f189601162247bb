package domain

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date key used by completion maps and notes.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format (must be YYYY-MM-DD)")

// Clock abstracts "now" so that every date decision can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the configured location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// Today returns the local calendar date of the clock as YYYY-MM-DD.
func Today(c Clock) string {
	return FormatDate(c.Now())
}

// FormatDate formats the calendar date of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD key into midnight UTC.
// Day arithmetic happens in UTC so daylight-saving shifts never skip or repeat a date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// AddDays shifts an ISO date by n days. Invalid input is returned unchanged.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, n))
}

// DaysBetween returns the number of calendar days from a to b (b - a).
// It counts on Unix seconds so that ranges beyond time.Duration's ~292 years
// do not saturate.
func DaysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / 86400)
}

// CalendarDate strips the time of day, keeping the calendar date of t as UTC midnight.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
