package julianday

import (
	"context"

	"cloudeng.io/logging/ctxlog"
	"github.com/shopspring/decimal"
)

// LeapYear reports whether cd falls in a leap year. The rule is selected
// by the calendar in force on cd (see [CalendarDate.Calendar]):
//
//   - Gregorian dates: the year is divisible by 4.
//   - Julian dates: the year is divisible by 4 and, if it is divisible by
//     100, also by 400.
//
// Note that the two rules are swapped relative to the astronomical
// convention, where the Julian calendar has no century exception.
func (cd CalendarDate) LeapYear() bool {
	if cd.Calendar() == Gregorian {
		return cd.year%4 == 0
	}
	return cd.year%4 == 0 && (cd.year%100 != 0 || cd.year%400 == 0)
}

// DayOfTheWeek returns the day of the week of cd. The day is first rounded
// to the nearest whole day (half to even), so 4.81 counts as the 5th.
// The week was not interrupted by the Gregorian reform: Thursday 1582-10-04
// was followed by Friday 1582-10-15.
//
// The error return is an internal consistency check and is always nil for
// a valid CalendarDate.
func (cd CalendarDate) DayOfTheWeek() (WeekDay, error) {
	return cd.DayOfTheWeekContext(context.Background())
}

// DayOfTheWeekContext is like DayOfTheWeek but logs the intermediate Julian
// Day at debug level to the logger stored in ctx by ctxlog.
func (cd CalendarDate) DayOfTheWeekContext(ctx context.Context) (WeekDay, error) {
	midnight := CalendarDate{year: cd.year, month: cd.month, day: cd.day.RoundBank(0)}
	jd := midnight.JulianDay()
	ctxlog.Logger(ctx).Debug("day of the week", "date", cd.String(), "julian_day", jd.String())

	idx := jd.day.Add(dOneAndHalf).Mod(dInt(7))
	if idx.IsNegative() {
		// Mod keeps the sign of the dividend; days before the epoch
		// still need an index in 0-6.
		idx = idx.Add(dInt(7))
	}
	return weekDayFromDecimal(idx)
}

// DayOfTheYear returns the ordinal day of cd within its year, from 1 to 365,
// or 366 in a leap year as defined by [CalendarDate.LeapYear]. A fractional
// day is truncated.
func (cd CalendarDate) DayOfTheYear() int {
	k := dInt(2)
	if cd.LeapYear() {
		k = dInt(1)
	}
	m := dInt(int64(cd.month))
	n := floorDiv(dInt(275).Mul(m), dInt(9)).
		Sub(k.Mul(floorDiv(m.Add(dInt(9)), dInt(12)))).
		Add(cd.day).
		Sub(dInt(30))
	return int(n.IntPart())
}

// Difference returns lhs - rhs in days, which is negative when lhs is
// before rhs.
func Difference(lhs, rhs CalendarDate) decimal.Decimal {
	return lhs.JulianDay().day.Sub(rhs.JulianDay().day)
}

// DaysBetween returns the number of days between lhs and rhs, |lhs - rhs|.
func DaysBetween(lhs, rhs CalendarDate) decimal.Decimal {
	return Difference(lhs, rhs).Abs()
}
