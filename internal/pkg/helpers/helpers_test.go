package helpers

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	for _, in := range []string{"09:30", "09:30:00", " 09:30 "} {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, 9, got.Hour())
		assert.Equal(t, 30, got.Minute())
		assert.Equal(t, 1, got.Year())
	}

	_, err := ParseClock("9h30")
	assert.Error(t, err)
	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("12/06/2025")
	assert.Error(t, err)
}

func TestPgTimeRoundTrip(t *testing.T) {
	clock, err := ParseClock("14:45:10")
	require.NoError(t, err)

	pg := PgTime(clock)
	assert.True(t, pg.Valid)
	assert.Equal(t, int64((14*3600+45*60+10)*1_000_000), pg.Microseconds)
	assert.Equal(t, "14:45:10", FromPgTime(pg).Format(TimeLayout))

	assert.True(t, FromPgTime(pgtype.Time{}).IsZero())
}

func TestPgDate(t *testing.T) {
	day := time.Date(2025, 1, 20, 17, 5, 0, 0, time.FixedZone("X", 3600))
	pg := PgDate(day)
	assert.True(t, pg.Valid)
	assert.Equal(t, "2025-01-20", FromPgDate(pg).Format(DateLayout))
	assert.False(t, PgDate(time.Time{}).Valid)
}

func TestNullableInt64(t *testing.T) {
	assert.Nil(t, NullableInt64(0))
	require.NotNil(t, NullableInt64(4))
	assert.Equal(t, int64(4), *NullableInt64(4))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("bogus", time.Minute))
}
