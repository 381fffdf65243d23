package julianday

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date CalendarDate
		want Calendar
	}{
		{"Sputnik launch", cd(1957, time.October, "4.81"), Gregorian},
		{"year 333", cd(333, time.January, "27.5"), Julian},
		{"last instant before reform", cd(1582, time.October, "14.9"), Julian},
		{"reform day", cd(1582, time.October, "15.0"), Gregorian},
		{"omitted day in reform gap", cd(1582, time.October, "10"), Julian},
		{"last Julian day", cd(1582, time.October, "4"), Julian},
		{"September 1582", cd(1582, time.September, "30"), Julian},
		{"November 1582", cd(1582, time.November, "1"), Gregorian},
		{"January 1583", cd(1583, time.January, "1"), Gregorian},
		{"year zero", cd(0, time.June, "1"), Julian},
		{"negative year", cd(-4712, time.January, "1.5"), Julian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.date); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestClassify_AnyDayOfMonth(t *testing.T) {
	t.Parallel()

	for _, day := range []string{"1", "14.99", "15", "31"} {
		if got := cd(1582, time.September, day).Calendar(); got != Julian {
			t.Errorf("1582-09-%s: got %v, want Julian", day, got)
		}
		if got := cd(1583, time.January, day).Calendar(); got != Gregorian {
			t.Errorf("1583-01-%s: got %v, want Gregorian", day, got)
		}
	}
}

func TestCalendarString(t *testing.T) {
	t.Parallel()

	if got := Gregorian.String(); got != "Gregorian" {
		t.Errorf("Gregorian.String() = %q", got)
	}
	if got := Julian.String(); got != "Julian" {
		t.Errorf("Julian.String() = %q", got)
	}
	if got := Calendar(7).String(); got != "Calendar(7)" {
		t.Errorf("Calendar(7).String() = %q", got)
	}
}
