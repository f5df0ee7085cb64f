package engine

import (
	"time"

	"github.com/manisharan-deep/study-planner/internal/models"
)

// XP and point awards for user actions. Policy constants, not derived.
const (
	XPTaskCreated        = 5
	XPTaskCompleted      = 15
	PointsTaskCompleted  = 5
	XPHabitCreated       = 15
	XPHabitCompleted     = 20
	PointsHabitCompleted = 5
	XPNoteCreated        = 10
	XPFocusSession       = 25
	PointsFocusSession   = 10
)

// xpPerLevel scales the level-up threshold: level N requires N*100 XP.
const xpPerLevel = 100

// Achievement identifiers. Achievements only unlock, never re-lock.
const (
	AchievementFirstTask     = "first_task"
	AchievementWeekStreak    = "week_streak"
	AchievementStudyMarathon = "study_marathon"
)

// marathon threshold: ten hours of cumulative study, in minutes
const marathonMinutes = 600

// Gamification holds the XP/level/points currency.
// Invariant: XP stays below the current level threshold; overflow rolls into
// level-ups.
type Gamification struct {
	Points int `json:"points"`
	Level  int `json:"level"`
	XP     int `json:"xp"`
}

// NextLevelThreshold returns the XP required to reach the next level.
func (g Gamification) NextLevelThreshold() int {
	level := g.Level
	if level < 1 {
		level = 1
	}
	return level * xpPerLevel
}

// AddXP adds experience and rolls overflow into level-ups, emitting one
// level-up event per level gained. A single large grant can cross several
// thresholds in one call.
func AddXP(g Gamification, amount int) (Gamification, []Event) {
	if amount < 0 {
		amount = 0
	}
	if g.Level < 1 {
		g.Level = 1
	}
	g.XP += amount

	var events []Event
	for threshold := g.Level * xpPerLevel; g.XP >= threshold; threshold = g.Level * xpPerLevel {
		g.Level++
		g.XP -= threshold
		events = append(events, Event{Kind: EventLevelUp, Value: g.Level})
	}
	return g, events
}

// AddPoints adds to the cumulative point score. Points have no leveling
// semantics and never decrease.
func AddPoints(g Gamification, amount int) Gamification {
	if amount > 0 {
		g.Points += amount
	}
	return g
}

// CheckAchievements evaluates the achievement predicates against current
// state and returns the updated unlocked set plus events for new unlocks.
func CheckAchievements(tasks []*models.Task, streaks Streaks, ledger *Ledger, unlocked []string) ([]string, []Event) {
	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}

	anyCompleted := false
	for _, t := range tasks {
		if t.Completed {
			anyCompleted = true
			break
		}
	}

	var events []Event
	unlock := func(id string) {
		if have[id] {
			return
		}
		have[id] = true
		unlocked = append(unlocked, id)
		events = append(events, Event{Kind: EventAchievementUnlocked, Name: id})
	}

	if anyCompleted {
		unlock(AchievementFirstTask)
	}
	if streaks.Best >= 7 {
		unlock(AchievementWeekStreak)
	}
	if ledger.TotalMinutes() >= marathonMinutes {
		unlock(AchievementStudyMarathon)
	}
	return unlocked, events
}

// ToggleHabitDay marks or unmarks a habit for the given date key and adjusts
// its streak incrementally: +1 on mark, -1 clamped at zero on unmark. The
// counter is deliberately not recomputed from the completed-date set, so it
// diverges from the true consecutive-day count when a non-adjacent day is
// toggled. Returns whether the day is now marked, plus milestone events.
func ToggleHabitDay(habit *models.Habit, day time.Time) (bool, []Event) {
	key := DateKey(day)
	if habit.CompletedOn(key) {
		kept := habit.CompletedDates[:0]
		for _, d := range habit.CompletedDates {
			if d != key {
				kept = append(kept, d)
			}
		}
		habit.CompletedDates = kept
		if habit.Streak > 0 {
			habit.Streak--
		}
		return false, nil
	}

	habit.CompletedDates = append(habit.CompletedDates, key)
	habit.Streak++

	var events []Event
	if habit.Streak == 7 || habit.Streak == 30 {
		events = append(events, Event{Kind: EventHabitMilestone, Value: habit.Streak, Name: habit.Name})
	}
	return true, events
}
