package helpers

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const microsecondsPerSecond = int64(time.Second / time.Microsecond)

// PgDate converts the calendar day of t to a DATE parameter.
func PgDate(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

// PgTime converts the clock part of t to a TIME parameter.
func PgTime(t time.Time) pgtype.Time {
	seconds := int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	return pgtype.Time{
		Microseconds: seconds*microsecondsPerSecond + int64(t.Nanosecond())/1000,
		Valid:        true,
	}
}

// FromPgDate returns the day held by d at midnight UTC, or the zero time.
func FromPgDate(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// FromPgTime returns the clock held by tm on the zero date.
func FromPgTime(tm pgtype.Time) time.Time {
	if !tm.Valid {
		return time.Time{}
	}
	return time.Time{}.Add(time.Duration(tm.Microseconds) * time.Microsecond)
}

// NullableInt64 returns nil for non-positive ids.
func NullableInt64(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}
