package julianday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarDates(t *testing.T) {
	t.Parallel()

	dates, err := CalendarDates(jd("2436116.31"), jd("0"))
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.True(t, dates[0].Equal(cd(1957, time.October, "4.81")))
	assert.True(t, dates[1].Equal(cd(-4712, time.January, "1.5")))
}

func TestCalendarDates_CollectsErrors(t *testing.T) {
	t.Parallel()

	dates, err := CalendarDates(jd("2436116.31"), jd("-1"), jd("0"), jd("-0.5"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJulianDay)
	assert.Contains(t, err.Error(), "julian day #1")
	assert.Contains(t, err.Error(), "julian day #3")
	assert.NotContains(t, err.Error(), "julian day #2")

	require.Len(t, dates, 4)
	assert.True(t, dates[0].Equal(cd(1957, time.October, "4.81")))
	assert.Equal(t, CalendarDate{}, dates[1])
	assert.True(t, dates[2].Equal(cd(-4712, time.January, "1.5")))
}

func TestCalendarDates_Empty(t *testing.T) {
	t.Parallel()

	dates, err := CalendarDates()
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestJulianDays(t *testing.T) {
	t.Parallel()

	jds := JulianDays(cd(1957, time.October, "4.81"), cd(333, time.January, "27.5"))
	require.Len(t, jds, 2)
	assert.True(t, jds[0].Equal(jd("2436116.31")))
	assert.True(t, jds[1].Equal(jd("1842713")))
}
