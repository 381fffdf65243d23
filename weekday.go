package julianday

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// WeekDay is a day of the week, Sunday = 0.
type WeekDay int

const (
	Sunday WeekDay = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekDayNames = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

func (w WeekDay) String() string {
	if w < Sunday || w > Saturday {
		return "WeekDay(" + strconv.Itoa(int(w)) + ")"
	}
	return weekDayNames[w]
}

// Weekday returns the equivalent time.Weekday.
func (w WeekDay) Weekday() time.Weekday { return time.Weekday(w) }

// weekDayFromDecimal maps a weekday index in 0-6 to its WeekDay.
func weekDayFromDecimal(d decimal.Decimal) (WeekDay, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %v", ErrNonIntegerDecimal, d)
	}
	n := d.IntPart()
	if n < int64(Sunday) || n > int64(Saturday) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDayNumber, n)
	}
	return WeekDay(n), nil
}
