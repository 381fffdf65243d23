package julianday

import (
	"strconv"

	"cloudeng.io/errors"
)

// CalendarDates converts each of jds to a CalendarDate. Conversion carries on
// past failures: the result has one entry per input, with the zero
// CalendarDate at every index that failed, and the returned error collects
// every failure annotated with its index.
func CalendarDates(jds ...JulianDay) ([]CalendarDate, error) {
	dates := make([]CalendarDate, len(jds))
	errs := &errors.M{}
	for i, jd := range jds {
		cd, err := jd.CalendarDate()
		if err != nil {
			errs.Append(errors.Annotate("julian day #"+strconv.Itoa(i), err))
			continue
		}
		dates[i] = cd
	}
	return dates, errs.Err()
}

// JulianDays returns the Julian Day of each of dates.
func JulianDays(dates ...CalendarDate) []JulianDay {
	jds := make([]JulianDay, len(dates))
	for i, cd := range dates {
		jds[i] = cd.JulianDay()
	}
	return jds
}
