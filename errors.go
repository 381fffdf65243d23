package julianday

import "errors"

var (
	// ErrInvalidJulianDay is returned when a negative Julian Day is
	// converted to a CalendarDate.
	ErrInvalidJulianDay = errors.New("invalid julian day")

	// ErrNonIntegerDecimal is returned when a weekday index computed from a
	// Julian Day has a fractional part. It indicates an internal
	// inconsistency and does not occur for valid dates.
	ErrNonIntegerDecimal = errors.New("weekday index is not an integer")

	// ErrInvalidDayNumber is returned when a weekday index falls outside
	// 0-6. Like ErrNonIntegerDecimal it does not occur for valid dates.
	ErrInvalidDayNumber = errors.New("invalid weekday number")
)
