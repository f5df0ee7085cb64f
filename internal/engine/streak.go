package engine

import "time"

// Streaks tracks the study streak derived from the ledger.
type Streaks struct {
	Current       int    `json:"current"`
	Best          int    `json:"best"`
	LastStudyDate string `json:"last_study_date,omitempty"`
}

// EvaluateStreaks recomputes the streak state for the given day.
//
// The LastStudyDate guard makes evaluation idempotent within a day: once the
// streak has been credited for today, re-evaluating cannot double-increment.
// A broken streak is detected lazily on the next evaluation after a missed
// day rather than by any scheduled event.
func EvaluateStreaks(ledger *Ledger, streaks Streaks, today time.Time) (Streaks, []Event) {
	todayKey := DateKey(today)
	yesterdayKey := DateKey(today.AddDate(0, 0, -1))

	studiedToday := ledger.MinutesOn(todayKey) > 0
	studiedYesterday := ledger.MinutesOn(yesterdayKey) > 0

	var events []Event
	switch {
	case studiedToday && streaks.LastStudyDate != todayKey:
		if streaks.LastStudyDate == yesterdayKey {
			streaks.Current++
		} else {
			// First-ever use lands here too: no last date is not yesterday.
			streaks.Current = 1
		}
		streaks.LastStudyDate = todayKey
		if streaks.Current > streaks.Best {
			streaks.Best = streaks.Current
			events = append(events, Event{Kind: EventBestStreak, Value: streaks.Best})
		}
	case !studiedToday && !studiedYesterday && streaks.Current > 0:
		streaks.Current = 0
	}
	return streaks, events
}
