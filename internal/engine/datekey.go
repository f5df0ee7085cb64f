package engine

import "time"

// dateKeyLayout buckets timestamps into local calendar days.
const dateKeyLayout = "2006-01-02"

// DateKey converts a timestamp into the calendar-day key used for all
// day-bucketed aggregates. Two timestamps map to the same key iff they fall
// on the same calendar day in local time.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a date key back into a local-midnight timestamp.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, time.Local)
}
