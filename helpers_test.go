package julianday

import (
	"time"

	"github.com/shopspring/decimal"
)

// dec is a test helper to construct decimals from literals.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// cd is a test helper to construct calendar dates.
func cd(year int, month time.Month, day string) CalendarDate {
	return NewCalendarDate(year, month, dec(day))
}

// jd is a test helper to construct Julian Days.
func jd(day string) JulianDay {
	return NewJulianDay(dec(day))
}
