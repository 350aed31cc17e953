package analytics

import (
	"math"
	"time"
)

// The API carries timestamps as integer nanoseconds since epoch.
// Conversions go through millisecond precision, truncating fractional
// nanoseconds, so that formatting and parsing round-trip exactly.
const (
	NanosPerMilli = int64(1_000_000)
	MillisPerDay  = int64(24 * 60 * 60 * 1000)

	localDateLayout = "2006-01-02"
)

// ToLocalDate converts a nanosecond timestamp to a local time.Time
func ToLocalDate(ns int64) time.Time {
	return time.UnixMilli(ns / NanosPerMilli)
}

// LocalDateToNanos parses a YYYY-MM-DD string as local midnight and
// returns it as nanoseconds since epoch. It is the exact inverse of
// FormatLocalDate for any valid date string.
func LocalDateToNanos(s string) (int64, error) {
	t, err := time.ParseInLocation(localDateLayout, s, time.Local)
	if err != nil {
		return 0, err
	}
	return t.UnixNano(), nil
}

// FormatLocalDate formats a nanosecond timestamp as YYYY-MM-DD in
// local time
func FormatLocalDate(ns int64) string {
	return ToLocalDate(ns).Format(localDateLayout)
}

// StartOfDay returns midnight of t's calendar day
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday starting t's week
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysUntil returns the number of days from now until the timestamp,
// rounding up, so an earlier moment today reads as 0 and tomorrow
// morning as 1. Timestamps before today yield negative values.
func DaysUntil(ns int64, now time.Time) int {
	deltaMillis := ns/NanosPerMilli - now.UnixMilli()
	return int(math.Ceil(float64(deltaMillis) / float64(MillisPerDay)))
}

// IsWithinDaysFromNow reports whether the timestamp falls between now
// and n days from now inclusive. Earlier today still counts as within
// range; anything before today never matches.
func IsWithinDaysFromNow(ns int64, n int, now time.Time) bool {
	d := DaysUntil(ns, now)
	return d >= 0 && d <= n
}

// IsThisWeek reports whether the timestamp falls in the Sunday-start
// week containing now
func IsThisWeek(ns int64, now time.Time) bool {
	weekStart := StartOfWeek(now)
	t := ToLocalDate(ns)
	return !t.Before(weekStart) && t.Before(weekStart.AddDate(0, 0, 7))
}

// IsLastWeek reports whether the timestamp falls in the week before
// the one containing now
func IsLastWeek(ns int64, now time.Time) bool {
	weekStart := StartOfWeek(now)
	t := ToLocalDate(ns)
	return !t.Before(weekStart.AddDate(0, 0, -7)) && t.Before(weekStart)
}
