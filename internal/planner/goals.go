package planner

import (
	"fmt"

	"github.com/manisharan-deep/study-planner/internal/engine"
	"github.com/manisharan-deep/study-planner/internal/store"
	"github.com/manisharan-deep/study-planner/internal/validation"
)

// SetGoals replaces the study targets.
func (p *Planner) SetGoals(goals engine.Goals) error {
	if err := validation.Validate.Struct(&goals); err != nil {
		return fmt.Errorf("invalid goals: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.goals = goals
	p.saveCollection(store.KeyGoals, p.goals)
	return nil
}

// Goals returns the current study targets.
func (p *Planner) Goals() engine.Goals {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.goals
}

// DailyProgress projects today's ledger totals against the daily targets.
func (p *Planner) DailyProgress() engine.DailyProgress {
	p.mu.Lock()
	defer p.mu.Unlock()
	return engine.DailyGoalProgress(&p.analytics.Ledger, p.goals, p.now())
}

// WeeklyProgress projects the trailing week against the weekly target.
func (p *Planner) WeeklyProgress() engine.WeeklyProgress {
	p.mu.Lock()
	defer p.mu.Unlock()
	return engine.WeeklyGoalProgress(&p.analytics.Ledger, p.goals, p.now())
}
