package planner

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/engine"
	"github.com/manisharan-deep/study-planner/internal/logger"
	"github.com/manisharan-deep/study-planner/internal/models"
	"github.com/manisharan-deep/study-planner/internal/notify"
	"github.com/manisharan-deep/study-planner/internal/store"
	"github.com/manisharan-deep/study-planner/internal/validation"
)

// HabitInput carries user-supplied fields for creating a habit.
type HabitInput struct {
	Name        string `validate:"required,min=1,max=100"`
	Description string `validate:"max=500"`
	Frequency   string `validate:"required,habit_frequency"`
	BestTime    string `validate:"max=50"`
	Icon        string `validate:"max=10"`
}

// AddHabit creates a habit and awards creation XP.
func (p *Planner) AddHabit(input HabitInput) (*models.Habit, error) {
	input.Name = validation.SanitizeText(input.Name)
	input.Description = validation.SanitizeText(input.Description)
	if err := validation.Validate.Struct(&input); err != nil {
		return nil, fmt.Errorf("invalid habit: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	habit := &models.Habit{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Frequency:   models.HabitFrequency(input.Frequency),
		BestTime:    input.BestTime,
		Icon:        input.Icon,
		CreatedAt:   p.now(),
	}
	p.habits = append(p.habits, habit)

	var events []engine.Event
	p.analytics.Gamification, events = engine.AddXP(p.analytics.Gamification, engine.XPHabitCreated)

	p.saveCollection(store.KeyHabits, p.habits)
	p.saveCollection(store.KeyAnalytics, p.analytics)
	p.dispatch(events)

	p.logger.Info("habit_created",
		zap.String("habit_id", habit.ID.String()),
		zap.String("name", logger.SanitizeTitle(habit.Name)),
	)
	return habit, nil
}

// ToggleHabit marks or unmarks today's completion for a habit, adjusting its
// incremental streak counter and awarding XP and points on completion.
// Returns whether the day is now marked.
func (p *Planner) ToggleHabit(id uuid.UUID) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var habit *models.Habit
	for _, h := range p.habits {
		if h.ID == id {
			habit = h
			break
		}
	}
	if habit == nil {
		return false, fmt.Errorf("habit %s not found", id)
	}

	marked, events := engine.ToggleHabitDay(habit, p.now())
	if marked {
		var levelEvents []engine.Event
		p.analytics.Gamification, levelEvents = engine.AddXP(p.analytics.Gamification, engine.XPHabitCompleted)
		p.analytics.Gamification = engine.AddPoints(p.analytics.Gamification, engine.PointsHabitCompleted)
		events = append(events, levelEvents...)
		p.notifyUser(fmt.Sprintf("Habit %q completed!", habit.Name), notify.SeveritySuccess)
	} else {
		p.notifyUser(fmt.Sprintf("Habit %q marked as incomplete", habit.Name), notify.SeverityInfo)
	}

	p.saveCollection(store.KeyHabits, p.habits)
	p.saveCollection(store.KeyAnalytics, p.analytics)
	p.dispatch(events)
	return marked, nil
}

// DeleteHabit removes a habit by explicit user action.
func (p *Planner) DeleteHabit(id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, h := range p.habits {
		if h.ID == id {
			p.habits = append(p.habits[:i], p.habits[i+1:]...)
			p.saveCollection(store.KeyHabits, p.habits)
			return nil
		}
	}
	return fmt.Errorf("habit %s not found", id)
}

// Habits returns all habits.
func (p *Planner) Habits() []*models.Habit {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*models.Habit(nil), p.habits...)
}

// HabitStats summarizes the habit view header figures.
type HabitStats struct {
	Active         int
	CompletedToday int
	CompletionRate int // percent
	LongestStreak  int
}

// HabitOverview computes today's habit completion summary.
func (p *Planner) HabitOverview() HabitStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := HabitStats{Active: len(p.habits)}
	today := engine.DateKey(p.now())
	for _, h := range p.habits {
		if h.CompletedOn(today) {
			stats.CompletedToday++
		}
		if h.Streak > stats.LongestStreak {
			stats.LongestStreak = h.Streak
		}
	}
	if stats.Active > 0 {
		stats.CompletionRate = stats.CompletedToday * 100 / stats.Active
	}
	return stats
}
