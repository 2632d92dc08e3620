package dateutil

import (
	"time"
)

// DateLayout is the wire format for all attendance and roster dates.
const DateLayout = "2006-01-02"

// Months are 0-indexed (0 = January) everywhere in the domain records,
// matching the stored data. These helpers do the conversion to time.Month.

// ParseDate parses a date string in "YYYY-MM-DD" format.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// IsSunday reports whether t falls on a Sunday.
func IsSunday(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// DaysInMonth returns the number of calendar days in the given month.
// month0 is 0-indexed. Leap years are handled by the calendar itself:
// day 0 of the following month is the last day of this one.
func DaysInMonth(year, month0 int) int {
	return time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// PrevMonth returns the month/year immediately before the given one,
// wrapping December of the previous year when month0 is January.
func PrevMonth(month0, year int) (int, int) {
	if month0 == 0 {
		return 11, year - 1
	}
	return month0 - 1, year
}

// SameMonth reports whether t falls in the given 0-indexed month and year.
func SameMonth(t time.Time, year, month0 int) bool {
	return t.Year() == year && int(t.Month())-1 == month0
}

// WeekOfMonth returns the 1-based week bucket of t within its month.
// Weeks start on Monday: the 1st of the month always opens week 1, and a
// new week begins on each Monday after it.
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())

	// Offset of the first day from Monday (Monday=0 ... Sunday=6).
	offset := (int(first.Weekday()) + 6) % 7

	return (t.Day()-1+offset)/7 + 1
}
