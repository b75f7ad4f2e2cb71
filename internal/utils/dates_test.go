package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddCalendarMonthsClampsToMonthEnd(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"plain month", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"jan 31 into leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"jan 31 into non-leap february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"may 31 into june", date(2024, time.May, 31), 1, date(2024, time.June, 30)},
		{"year rollover", date(2024, time.December, 1), 1, date(2025, time.January, 1)},
		{"multiple months", date(2024, time.January, 31), 3, date(2024, time.April, 30)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, AddCalendarMonths(tc.in, tc.n))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, time.February)
	require.Equal(t, date(2024, time.February, 1), start)
	require.Equal(t, date(2024, time.February, 29), end)

	start, end = MonthBounds(2024, time.March)
	require.Equal(t, date(2024, time.March, 1), start)
	require.Equal(t, date(2024, time.March, 31), end)
}

func TestDateOnlyStripsTimeAndZone(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Kinshasa")
	require.NoError(t, err)

	in := time.Date(2024, time.June, 10, 23, 45, 12, 0, loc)
	require.Equal(t, date(2024, time.June, 10), DateOnly(in))
}
