package julianday

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/shopspring/decimal"
)

// JulianDayFromTime returns the Julian Day of the instant t, including the
// time of day to the nanosecond. t is converted to UTC first.
func JulianDayFromTime(t time.Time) JulianDay {
	t = t.UTC()
	secs := decimal.NewFromInt(t.Unix()).Add(decimal.New(int64(t.Nanosecond()), -9))
	return JulianDay{day: dUnixEpoch.Add(secs.Div(dSecondsPerDay))}
}

// Time returns the UTC instant of jd, rounded to the nearest nanosecond.
// The result uses Go's proleptic Gregorian calendar, so for days before
// 1582-10-15 its year, month and day differ from those returned by
// [JulianDay.CalendarDate].
func (jd JulianDay) Time() time.Time {
	secs := jd.day.Sub(dUnixEpoch).Mul(dSecondsPerDay)
	whole := secs.Floor()
	nanos := secs.Sub(whole).Mul(dNanosPerSec).Round(0)
	return time.Unix(whole.IntPart(), nanos.IntPart()).UTC()
}

// CalendarDateFromTime returns the UTC date of t with the time of day folded
// into the fractional day. The year, month and day are taken from t as is,
// and t uses the proleptic Gregorian calendar, so the result is only
// meaningful for instants on or after 1582-10-15.
func CalendarDateFromTime(t time.Time) CalendarDate {
	t = t.UTC()
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	secs := decimal.NewFromInt(int64(h*3600 + mi*60 + s)).Add(decimal.New(int64(t.Nanosecond()), -9))
	day := dInt(int64(d))
	if !secs.IsZero() {
		day = day.Add(secs.Div(dSecondsPerDay))
	}
	return CalendarDate{year: y, month: m, day: day}
}

// Datetime returns cd as a cloudeng.io/datetime CalendarDate. The fractional
// part of the day is dropped.
func (cd CalendarDate) Datetime() datetime.CalendarDate {
	return datetime.NewCalendarDate(cd.year, datetime.Month(cd.month), int(cd.day.IntPart()))
}

// CalendarDateFromDatetime returns the CalendarDate for a cloudeng.io/datetime
// CalendarDate at midnight. As with NewCalendarDate, dt is not validated.
func CalendarDateFromDatetime(dt datetime.CalendarDate) CalendarDate {
	return CalendarDate{year: dt.Year(), month: time.Month(dt.Month()), day: dInt(int64(dt.Day()))}
}
