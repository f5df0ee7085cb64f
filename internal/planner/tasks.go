package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/engine"
	"github.com/manisharan-deep/study-planner/internal/logger"
	"github.com/manisharan-deep/study-planner/internal/models"
	"github.com/manisharan-deep/study-planner/internal/notify"
	"github.com/manisharan-deep/study-planner/internal/store"
	"github.com/manisharan-deep/study-planner/internal/validation"
)

// TaskInput carries user-supplied fields for creating or editing a task.
type TaskInput struct {
	Title             string `validate:"required,min=1,max=200"`
	Description       string `validate:"max=2000"`
	Category          string `validate:"required,task_category"`
	Priority          string `validate:"required,task_priority"`
	DueDate           *time.Time
	EstimatedHours    float64 `validate:"min=0"`
	Recurring         bool
	RecurrencePattern string `validate:"omitempty,recurrence_pattern"`
	Subtasks          []string
	Notes             string `validate:"max=5000"`
}

func (in *TaskInput) sanitize() {
	in.Title = validation.SanitizeText(in.Title)
	in.Description = validation.SanitizeText(in.Description)
	in.Notes = validation.SanitizeText(in.Notes)
}

func (in *TaskInput) validate() error {
	if err := validation.Validate.Struct(in); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}
	if in.Recurring && in.RecurrencePattern == "" {
		return fmt.Errorf("recurring tasks require a recurrence pattern")
	}
	return nil
}

// AddTask creates a task from input, awards creation XP, and persists.
func (p *Planner) AddTask(input TaskInput) (*models.Task, error) {
	input.sanitize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	task := &models.Task{
		ID:                uuid.New(),
		Title:             input.Title,
		Description:       input.Description,
		Category:          models.TaskCategory(input.Category),
		Priority:          models.TaskPriority(input.Priority),
		DueDate:           input.DueDate,
		EstimatedHours:    input.EstimatedHours,
		Recurring:         input.Recurring,
		RecurrencePattern: models.RecurrencePattern(input.RecurrencePattern),
		Notes:             input.Notes,
		CreatedAt:         p.now(),
	}
	for _, text := range input.Subtasks {
		text = validation.SanitizeText(text)
		if text != "" {
			task.Subtasks = append(task.Subtasks, models.Subtask{Text: text})
		}
	}

	p.tasks = append(p.tasks, task)

	var events []engine.Event
	p.analytics.Gamification, events = engine.AddXP(p.analytics.Gamification, engine.XPTaskCreated)

	p.saveCollection(store.KeyTasks, p.tasks)
	p.saveCollection(store.KeyAnalytics, p.analytics)
	p.dispatch(events)

	p.logger.Info("task_created",
		zap.String("task_id", task.ID.String()),
		zap.String("title", logger.SanitizeTitle(task.Title)),
		zap.String("category", string(task.Category)),
		zap.Bool("recurring", task.Recurring),
	)
	return task, nil
}

// EditTask replaces the editable fields of an existing task. Completion
// state and identity are untouched.
func (p *Planner) EditTask(id uuid.UUID, input TaskInput) (*models.Task, error) {
	input.sanitize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	task := p.findTask(id)
	if task == nil {
		return nil, fmt.Errorf("task %s not found", id)
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Category = models.TaskCategory(input.Category)
	task.Priority = models.TaskPriority(input.Priority)
	task.DueDate = input.DueDate
	task.EstimatedHours = input.EstimatedHours
	task.Recurring = input.Recurring
	task.RecurrencePattern = models.RecurrencePattern(input.RecurrencePattern)
	task.Notes = input.Notes

	p.saveCollection(store.KeyTasks, p.tasks)
	return task, nil
}

// ToggleTask flips a task's completion state. Completing a task awards XP
// and points, records the completion in the ledger, and re-evaluates streaks
// and achievements. Un-completing clears the completion timestamp but leaves
// the append-only ledger untouched.
func (p *Planner) ToggleTask(id uuid.UUID) (*models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	task := p.findTask(id)
	if task == nil {
		return nil, fmt.Errorf("task %s not found", id)
	}

	now := p.now()
	task.Completed = !task.Completed
	if task.Completed {
		completedAt := now
		task.CompletedAt = &completedAt

		var events []engine.Event
		p.analytics.Gamification, events = engine.AddXP(p.analytics.Gamification, engine.XPTaskCompleted)
		p.analytics.Gamification = engine.AddPoints(p.analytics.Gamification, engine.PointsTaskCompleted)
		p.analytics.Ledger.AddTaskCompletion(engine.DateKey(now))

		var streakEvents []engine.Event
		p.analytics.Streaks, streakEvents = engine.EvaluateStreaks(&p.analytics.Ledger, p.analytics.Streaks, now)
		events = append(events, streakEvents...)

		var unlockEvents []engine.Event
		p.analytics.Achievements, unlockEvents = engine.CheckAchievements(p.tasks, p.analytics.Streaks, &p.analytics.Ledger, p.analytics.Achievements)
		events = append(events, unlockEvents...)

		p.notifyUser(fmt.Sprintf("Task %q completed!", task.Title), notify.SeveritySuccess)
		p.saveCollection(store.KeyTasks, p.tasks)
		p.saveCollection(store.KeyAnalytics, p.analytics)
		p.dispatch(events)
	} else {
		task.CompletedAt = nil
		p.saveCollection(store.KeyTasks, p.tasks)
	}

	return task, nil
}

// ToggleSubtask flips one subtask checkbox on a task.
func (p *Planner) ToggleSubtask(id uuid.UUID, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	task := p.findTask(id)
	if task == nil {
		return fmt.Errorf("task %s not found", id)
	}
	if index < 0 || index >= len(task.Subtasks) {
		return fmt.Errorf("subtask index %d out of range", index)
	}
	task.Subtasks[index].Completed = !task.Subtasks[index].Completed
	p.saveCollection(store.KeyTasks, p.tasks)
	return nil
}

// DeleteTask removes a task. Tasks are only ever removed by explicit user
// action.
func (p *Planner) DeleteTask(id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, t := range p.tasks {
		if t.ID == id {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			p.saveCollection(store.KeyTasks, p.tasks)
			p.logger.Info("task_deleted", zap.String("task_id", id.String()))
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

// TaskFilter narrows ListTasks output. Empty fields match everything.
type TaskFilter struct {
	Category string
	Priority string
	Status   string // "completed" or "pending"
}

// ListTasks returns tasks matching the filter.
func (p *Planner) ListTasks(filter TaskFilter) []*models.Task {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*models.Task
	for _, t := range p.tasks {
		if filter.Category != "" && string(t.Category) != filter.Category {
			continue
		}
		if filter.Priority != "" && string(t.Priority) != filter.Priority {
			continue
		}
		switch filter.Status {
		case "completed":
			if !t.Completed {
				continue
			}
		case "pending":
			if t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// TaskSummary returns completed and total task counts for the dashboard.
func (p *Planner) TaskSummary() (done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range p.tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(p.tasks)
}

// findTask assumes the caller holds the lock.
func (p *Planner) findTask(id uuid.UUID) *models.Task {
	for _, t := range p.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
