// Package julianday converts between civil calendar dates and Julian Day
// numbers, and answers the questions that follow from that conversion: which
// calendar (Julian or Gregorian) governs a date, whether it falls in a leap
// year, its day of the week and day of the year, and the number of days
// between two dates.
//
// The Julian Day is a continuous count of days since noon of -4712-01-01 on
// the Julian calendar. Dates strictly before 1582-10-15 are interpreted on the
// Julian calendar and dates from then on on the Gregorian calendar, so
// 1582-10-04 is followed by 1582-10-15.
//
// All arithmetic is carried out on decimals, not floats, so results are exact:
//
//	date := julianday.NewCalendarDate(1957, time.October, decimal.RequireFromString("4.81"))
//	date.JulianDay()  // 2436116.31
//
// There is no timezone handling. A CalendarDate and a JulianDay describe the
// same abstract frame, which is treated as UTC wherever a time.Time is
// involved.
package julianday

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JulianDay is a decimal count of days since noon of -4712-01-01 (Julian
// calendar). A value ending in .5 falls on midnight.
//
// Any decimal is a structurally valid JulianDay, but only non-negative
// values can be converted back to a CalendarDate.
type JulianDay struct {
	day decimal.Decimal
}

// NewJulianDay returns the JulianDay for day.
func NewJulianDay(day decimal.Decimal) JulianDay {
	return JulianDay{day: day}
}

// Day returns the day count.
func (jd JulianDay) Day() decimal.Decimal { return jd.day }

// Equal reports whether jd and other denote the same day count.
func (jd JulianDay) Equal(other JulianDay) bool { return jd.day.Equal(other.day) }

func (jd JulianDay) String() string { return jd.day.String() }

// JulianDay returns the Julian Day of cd. Every CalendarDate has one.
func (cd CalendarDate) JulianDay() JulianDay {
	y, m := cd.year, int(cd.month)
	if m == 1 || m == 2 {
		// January and February are counted as months 13 and 14 of
		// the previous year.
		y--
		m += 12
	}

	b := decimal.Zero
	if cd.Calendar() == Gregorian {
		a := floorDiv(dInt(int64(y)), dInt(100))
		b = dInt(2).Sub(a).Add(floorDiv(a, dInt(4)))
	}

	day := floorMul(dYearDays, dInt(int64(y)+4716)).
		Add(floorMul(dMonthDays, dInt(int64(m)+1))).
		Add(cd.day).
		Add(b).
		Sub(dEpochShift)
	return JulianDay{day: day}
}

// ToJulianDay returns the Julian Day of cd.
func ToJulianDay(cd CalendarDate) JulianDay { return cd.JulianDay() }

// CalendarDate returns the calendar date of jd, on the Julian calendar for
// days before 1582-10-15 and the Gregorian calendar from then on.
// It returns ErrInvalidJulianDay if jd is negative.
//
// Every non-negative JulianDay yields a date, but only Julian Days produced
// by [CalendarDate.JulianDay] are guaranteed to round trip.
func (jd JulianDay) CalendarDate() (CalendarDate, error) {
	if jd.day.IsNegative() {
		return CalendarDate{}, fmt.Errorf("%w: %v", ErrInvalidJulianDay, jd.day)
	}

	shifted := jd.day.Add(dHalf)
	z := shifted.Floor()
	f := shifted.Sub(z)

	a := z
	if !z.LessThan(dGregorianStart) {
		alpha := floorDiv(z.Sub(dAlphaBase), dCentury)
		a = z.Add(dInt(1)).Add(alpha).Sub(floorDiv(alpha, dInt(4)))
	}

	b := a.Add(dInt(1524))
	c := floorDiv(b.Sub(dYearBase), dYearDays)
	d := floorMul(dYearDays, c)
	e := floorDiv(b.Sub(d), dMonthDays)

	day := b.Sub(d).Sub(floorMul(dMonthDays, e)).Add(f)

	month := e.Sub(dInt(13))
	if e.LessThan(dInt(14)) {
		month = e.Sub(dInt(1))
	}
	year := c.Sub(dInt(4715))
	if month.GreaterThan(dInt(2)) {
		year = c.Sub(dInt(4716))
	}

	return CalendarDate{
		year:  int(year.IntPart()),
		month: time.Month(month.IntPart()),
		day:   day,
	}, nil
}

// FromJulianDay returns the calendar date of jd. See [JulianDay.CalendarDate].
func FromJulianDay(jd JulianDay) (CalendarDate, error) { return jd.CalendarDate() }
