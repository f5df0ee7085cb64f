package planner

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/engine"
	"github.com/manisharan-deep/study-planner/internal/logger"
	"github.com/manisharan-deep/study-planner/internal/notify"
	"github.com/manisharan-deep/study-planner/internal/store"
)

// RecordStudyMinutes adds study time to today's ledger bucket and
// re-evaluates streaks and achievements.
func (p *Planner) RecordStudyMinutes(minutes int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recordStudyMinutesLocked(minutes)
}

func (p *Planner) recordStudyMinutesLocked(minutes int) {
	if minutes <= 0 {
		return
	}
	now := p.now()
	p.analytics.Ledger.AddStudyMinutes(engine.DateKey(now), minutes)

	var events []engine.Event
	p.analytics.Streaks, events = engine.EvaluateStreaks(&p.analytics.Ledger, p.analytics.Streaks, now)

	var unlockEvents []engine.Event
	p.analytics.Achievements, unlockEvents = engine.CheckAchievements(p.tasks, p.analytics.Streaks, &p.analytics.Ledger, p.analytics.Achievements)
	events = append(events, unlockEvents...)

	p.saveCollection(store.KeyAnalytics, p.analytics)
	p.dispatch(events)
}

// FinishFocusSession records a completed focus phase: session counters, XP
// and points, focus statistics, and the study time itself.
func (p *Planner) FinishFocusSession(focusMinutes int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.analytics.Sessions.Today++
	p.analytics.Sessions.Total++

	var events []engine.Event
	p.analytics.Gamification, events = engine.AddXP(p.analytics.Gamification, engine.XPFocusSession)
	p.analytics.Gamification = engine.AddPoints(p.analytics.Gamification, engine.PointsFocusSession)

	// The average is derived from focusStats' own counters only, so a backup
	// restoring one collection but not the other cannot skew it.
	p.focusStats.SessionsToday++
	p.focusStats.TotalSessions++
	p.focusStats.TotalFocusMinutes += focusMinutes
	p.focusStats.AverageSessionMinutes = p.focusStats.TotalFocusMinutes / p.focusStats.TotalSessions

	p.dispatch(events)
	p.recordStudyMinutesLocked(focusMinutes)

	// The focus streak mirrors the study streak once today's session counts.
	p.focusStats.FocusStreak = p.analytics.Streaks.Current
	p.saveCollection(store.KeyFocusStats, p.focusStats)

	p.logger.Info("focus_session_finished",
		zap.Int("minutes", focusMinutes),
		zap.Int("sessions_today", p.analytics.Sessions.Today),
		zap.Int("sessions_total", p.analytics.Sessions.Total),
	)
}

// RefreshStreaks runs the lazy streak evaluation for the current day. This
// is how a missed day is detected: the next evaluation resets the counter.
func (p *Planner) RefreshStreaks() engine.Streaks {
	p.mu.Lock()
	defer p.mu.Unlock()

	var events []engine.Event
	p.analytics.Streaks, events = engine.EvaluateStreaks(&p.analytics.Ledger, p.analytics.Streaks, p.now())
	p.saveCollection(store.KeyAnalytics, p.analytics)
	p.dispatch(events)
	return p.analytics.Streaks
}

// ScanReminders notifies once for every pending task whose due date is less
// than an hour away. Tasks further than 24 hours out are ignored. The
// ReminderSent flag keeps the scan from repeating a notification.
func (p *Planner) ScanReminders() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.settings.TaskReminders {
		return 0
	}

	now := p.now()
	notified := 0
	for _, task := range p.tasks {
		if task.DueDate == nil || task.Completed || task.ReminderSent {
			continue
		}
		until := task.DueDate.Sub(now)
		if until <= 0 || until > 24*time.Hour {
			continue
		}
		if until <= time.Hour {
			p.notifyUser(fmt.Sprintf("Task %q is due in less than an hour!", task.Title), notify.SeverityWarning)
			task.ReminderSent = true
			notified++
		}
	}
	if notified > 0 {
		p.saveCollection(store.KeyTasks, p.tasks)
	}
	return notified
}

// ScanRecurring spawns the next instance for every eligible completed
// recurring task. The spawn marker on the source task makes the scan safe to
// re-run at any cadence.
func (p *Planner) ScanRecurring() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	spawned := 0
	for _, task := range p.tasks {
		if !engine.ShouldRecur(task, now) {
			continue
		}
		next := engine.SpawnNext(task, now)
		p.tasks = append(p.tasks, next)
		spawned++
		p.logger.Info("recurring_task_spawned",
			zap.String("source_id", task.ID.String()),
			zap.String("task_id", next.ID.String()),
			zap.String("title", logger.SanitizeTitle(next.Title)),
			zap.String("pattern", string(next.RecurrencePattern)),
		)
	}
	if spawned > 0 {
		p.saveCollection(store.KeyTasks, p.tasks)
	}
	return spawned
}
