package types

import (
	"strings"
	"time"
)

// DateFormat is the ISO 8601 full-date layout used for day keys and JSON.
const DateFormat = "2006-01-02"

// Midday returns 12:00 UTC on the calendar date of t in t's own location.
//
// All day arithmetic works on midday values so that adding days never
// crosses a date boundary because of time zones or DST.
func Midday(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the month of the year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// IsLastDay reports whether t is the last day of its month.
func IsLastDay(t time.Time) bool {
	return t.Day() == DaysIn(t.Year(), t.Month())
}

// AddDays adds n calendar days to t.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths adds n calendar months to t, keeping the day of month.
// If that day does not exist in the target month, the last day of the
// target month is used instead.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	if last := DaysIn(target.Year(), target.Month()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// MonthsBetween returns the number of calendar months from one time to another.
// The day of month is ignored, so January 31st to February 1st is one month.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// DaysBetween returns the number of calendar days from one time to another.
func DaysBetween(from, to time.Time) int {
	return int(Midday(to).Sub(Midday(from)).Hours() / 24)
}

// DateKey returns the YYYY-MM-DD key of t.
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

// ParseDate parses a date in YYYY-MM-DD or RFC3339 format.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if fullDate.MatchString(s) {
		return time.Parse(DateFormat, s)
	}

	return time.Parse(time.RFC3339, s)
}

// Date is a calendar date that decodes leniently from JSON.
//
// Values that cannot be parsed decode to the zero Date, which callers
// resolve to "now".
type Date time.Time

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// Time returns the date as time.Time.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + DateKey(time.Time(d)) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It never fails.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)

	t, err := ParseDate(value)
	if err != nil {
		*d = Date{}
		return nil
	}

	*d = Date(Midday(t))
	return nil
}

// ResolveDate returns t normalized to midday, or midday of now if t is zero.
func ResolveDate(t, now time.Time) time.Time {
	if t.IsZero() {
		return Midday(now)
	}

	return Midday(t)
}
