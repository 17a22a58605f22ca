package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
}

func TestParseDate(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2026-10-20", want: "2026-10-20"},
		{in: "2026-10-20T00:00:00.000Z", want: "2026-10-20"},
		{in: "2026-10-20T23:30:00-06:00", want: "2026-10-20"},
		{in: "2026-10-20 08:00", want: "2026-10-20"},
		{in: "20-10-2026", wantErr: true},
		{in: "2026-13-01", wantErr: true},
		{in: "2026-10-20X", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in, loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(DateLayout))
		})
	}
}

func TestOnDate_UsesLocation(t *testing.T) {
	loc := Location("America/Mexico_City")
	day, err := ParseDate("2026-10-20", loc)
	require.NoError(t, err)

	got, err := OnDate(day, "09:30")
	require.NoError(t, err)

	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, err = OnDate(day, "9h30")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	mins, err := ParseClock("13:45")
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, mins)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestDateComparisons(t *testing.T) {
	loc := time.UTC
	a := time.Date(2026, 10, 19, 23, 59, 0, 0, loc)
	b := time.Date(2026, 10, 20, 0, 1, 0, 0, loc)

	assert.True(t, BeforeDate(a, b))
	assert.False(t, BeforeDate(b, a))
	assert.False(t, SameDate(a, b))
	assert.True(t, SameDate(b, time.Date(2026, 10, 20, 18, 0, 0, 0, loc)))
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, loc), StartOfDay(b))
}
