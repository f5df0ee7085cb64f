package planner

import (
	"github.com/manisharan-deep/study-planner/internal/engine"
	"github.com/manisharan-deep/study-planner/internal/models"
	"github.com/manisharan-deep/study-planner/internal/store"
)

// Dashboard gathers the derived figures shown by the stats view.
type Dashboard struct {
	Daily        engine.DailyProgress
	Weekly       engine.WeeklyProgress
	WeeklySeries []int
	Streaks      engine.Streaks
	Gamification engine.Gamification
	XPNeeded     int
	Achievements []string
	Sessions     engine.SessionCounts
	FocusStats   models.FocusStats
	TasksDone    int
	TasksTotal   int
	Quote        Quote
}

// Dashboard recomputes every derived display value. The streak evaluation
// runs first so a missed day is reflected before the figures are read.
func (p *Planner) Dashboard() Dashboard {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()

	before := p.analytics.Streaks
	var events []engine.Event
	p.analytics.Streaks, events = engine.EvaluateStreaks(&p.analytics.Ledger, p.analytics.Streaks, now)
	if p.analytics.Streaks != before {
		p.saveCollection(store.KeyAnalytics, p.analytics)
	}
	p.dispatch(events)

	done, total := 0, len(p.tasks)
	for _, t := range p.tasks {
		if t.Completed {
			done++
		}
	}

	return Dashboard{
		Daily:        engine.DailyGoalProgress(&p.analytics.Ledger, p.goals, now),
		Weekly:       engine.WeeklyGoalProgress(&p.analytics.Ledger, p.goals, now),
		WeeklySeries: p.analytics.Ledger.WeeklySeries(now),
		Streaks:      p.analytics.Streaks,
		Gamification: p.analytics.Gamification,
		XPNeeded:     p.analytics.Gamification.NextLevelThreshold(),
		Achievements: append([]string(nil), p.analytics.Achievements...),
		Sessions:     p.analytics.Sessions,
		FocusStats:   p.focusStats,
		TasksDone:    done,
		TasksTotal:   total,
		Quote:        RandomQuote(),
	}
}
