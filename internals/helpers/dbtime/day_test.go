package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUTCOffset(t *testing.T) {
	cases := []struct {
		in   string
		secs int
	}{
		{"+05:45", 5*3600 + 45*60},
		{"-03:30", -(3*3600 + 30*60)},
		{"+07", 7 * 3600},
		{"+0530", 5*3600 + 30*60},
		{"Z", 0},
		{"", 0},
	}
	for _, tc := range cases {
		loc, err := ParseUTCOffset(tc.in)
		require.NoError(t, err, tc.in)
		_, off := time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Zone()
		assert.Equal(t, tc.secs, off, tc.in)
	}
}

func TestParseUTCOffsetRejectsGarbage(t *testing.T) {
	for _, in := range []string{"05:45", "+25:00", "+05:75", "+ab:cd", "Asia/Kathmandu"} {
		_, err := ParseUTCOffset(in)
		assert.Error(t, err, in)
	}
}

func TestDayKeyUsesLocalCalendarDay(t *testing.T) {
	loc, err := ParseUTCOffset("+05:45")
	require.NoError(t, err)

	// 2026-03-01 18:30 UTC == 2026-03-02 00:15 +05:45
	ts := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	key := DayKey(ts, loc)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), key)
	assert.Equal(t, "2026-03-02", FormatDay(key))

	// 18:14 UTC masih 23:59 lokal tanggal 1
	assert.Equal(t, "2026-03-01", FormatDay(DayKey(ts.Add(-16*time.Minute), loc)))
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-10-18")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), *d)

	d, err = ParseDay("  ")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDay("18/10/2026")
	assert.Error(t, err)
}
