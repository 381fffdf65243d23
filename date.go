package julianday

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CalendarDate is a civil date with a fractional day of the month. Years use
// astronomical numbering: year 0 is 1 BC and year -1 is 2 BC.
// The fractional part of the day is the time of day as a fraction of
// 24 hours, so 4.5 is noon on the 4th.
//
// A CalendarDate is an immutable value. Compare with [CalendarDate.Equal]
// rather than ==, since equal decimals may differ in representation.
type CalendarDate struct {
	year  int
	month time.Month
	day   decimal.Decimal
}

// NewCalendarDate returns the CalendarDate for year, month and day.
//
// NewCalendarDate does NOT validate its arguments. The caller must supply a
// real calendar date: month in 1-12 and a day that exists in that month of
// that year (taking into account the Julian or Gregorian calendar in force,
// see [Classify]). Out of range values are not rejected and every operation
// on the result is then unspecified.
func NewCalendarDate(year int, month time.Month, day decimal.Decimal) CalendarDate {
	return CalendarDate{year: year, month: month, day: day}
}

// Year returns the astronomical year.
func (cd CalendarDate) Year() int { return cd.year }

// Month returns the month, 1-12.
func (cd CalendarDate) Month() time.Month { return cd.month }

// Day returns the possibly fractional day of the month.
func (cd CalendarDate) Day() decimal.Decimal { return cd.day }

// Equal reports whether cd and other denote the same year, month and day.
func (cd CalendarDate) Equal(other CalendarDate) bool {
	return cd.year == other.year && cd.month == other.month && cd.day.Equal(other.day)
}

// Compare returns -1, 0 or +1 depending on whether cd is before, equal to
// or after other. Dates on either side of the Gregorian reform are compared
// through their Julian Day, so 1582-10-04 (Julian) is the day before
// 1582-10-15 (Gregorian).
func (cd CalendarDate) Compare(other CalendarDate) int {
	return cd.JulianDay().day.Cmp(other.JulianDay().day)
}

// Before reports whether cd occurs before other.
func (cd CalendarDate) Before(other CalendarDate) bool {
	return cd.Compare(other) < 0
}

// After reports whether cd occurs after other.
func (cd CalendarDate) After(other CalendarDate) bool {
	return other.Before(cd)
}

func (cd CalendarDate) String() string {
	pad := ""
	if cd.day.LessThan(dInt(10)) && !cd.day.IsNegative() {
		pad = "0"
	}
	return fmt.Sprintf("%04d-%02d-%s%s", cd.year, int(cd.month), pad, cd.day.String())
}
