package engine

import "time"

// Ledger holds day-keyed accumulators for study minutes and completed-task
// counts. History is append-only per day and never pruned.
type Ledger struct {
	StudyMinutes   map[string]int `json:"study_minutes"`
	CompletedTasks map[string]int `json:"completed_tasks"`
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		StudyMinutes:   make(map[string]int),
		CompletedTasks: make(map[string]int),
	}
}

func (l *Ledger) ensure() {
	if l.StudyMinutes == nil {
		l.StudyMinutes = make(map[string]int)
	}
	if l.CompletedTasks == nil {
		l.CompletedTasks = make(map[string]int)
	}
}

// AddStudyMinutes adds minutes to the given day's bucket, creating it at zero
// if absent. Negative amounts are ignored.
func (l *Ledger) AddStudyMinutes(key string, minutes int) {
	if minutes <= 0 {
		return
	}
	l.ensure()
	l.StudyMinutes[key] += minutes
}

// AddTaskCompletion increments the given day's completed-task count.
func (l *Ledger) AddTaskCompletion(key string) {
	l.ensure()
	l.CompletedTasks[key]++
}

// MinutesOn returns the study minutes recorded for a day, 0 for unknown keys.
func (l *Ledger) MinutesOn(key string) int {
	return l.StudyMinutes[key]
}

// TasksOn returns the completed-task count for a day, 0 for unknown keys.
func (l *Ledger) TasksOn(key string) int {
	return l.CompletedTasks[key]
}

// TotalMinutes returns the cumulative study minutes across all days.
func (l *Ledger) TotalMinutes() int {
	total := 0
	for _, m := range l.StudyMinutes {
		total += m
	}
	return total
}

// WeeklySeries returns the minute totals for the 7 days ending at the
// reference day, oldest first. It is a pure projection of the ledger.
func (l *Ledger) WeeklySeries(reference time.Time) []int {
	series := make([]int, 0, 7)
	for i := 6; i >= 0; i-- {
		day := reference.AddDate(0, 0, -i)
		series = append(series, l.MinutesOn(DateKey(day)))
	}
	return series
}
