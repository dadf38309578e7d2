package schedule

import (
	"time"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// DisplayLayout is used in operator-facing messages
const DisplayLayout = "02/01/2006"

// Clock supplies the current instant; inject a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the configured time zone
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location != nil {
		return time.Now().In(c.Location)
	}
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// DateOf returns the calendar date of t (in t's own location) as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date of clock
func Today(clock Clock) time.Time {
	return DateOf(clock.Now())
}

// DaysBetween returns the number of calendar days from from to to.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}
