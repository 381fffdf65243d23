package julianday

import (
	"strconv"
	"time"
)

// Calendar identifies the rule set that governs a CalendarDate.
type Calendar int

const (
	Gregorian Calendar = iota
	Julian
)

func (c Calendar) String() string {
	switch c {
	case Gregorian:
		return "Gregorian"
	case Julian:
		return "Julian"
	}
	return "Calendar(" + strconv.Itoa(int(c)) + ")"
}

// reformYear, reformMonth and reformDay mark 1582-10-15, the first day of
// the Gregorian calendar.
const (
	reformYear  = 1582
	reformMonth = time.October
	reformDay   = 15
)

// Calendar returns the calendar in force on cd: Julian for dates strictly
// before 1582-10-15 and Gregorian from then on. The dates 1582-10-05 to
// 1582-10-14 never occurred but are classified as Julian.
func (cd CalendarDate) Calendar() Calendar {
	switch {
	case cd.year < reformYear:
		return Julian
	case cd.year == reformYear && cd.month < reformMonth:
		return Julian
	case cd.year == reformYear && cd.month == reformMonth && cd.day.LessThan(dInt(reformDay)):
		return Julian
	}
	return Gregorian
}

// Classify returns the calendar in force on cd.
func Classify(cd CalendarDate) Calendar { return cd.Calendar() }
