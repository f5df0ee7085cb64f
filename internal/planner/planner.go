// Package planner owns the single application state instance and wires the
// pure engines to the persistence and notification sinks. Every mutating
// operation runs to completion, persists the touched collections, and then
// dispatches any emitted events.
package planner

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/engine"
	"github.com/manisharan-deep/study-planner/internal/logger"
	"github.com/manisharan-deep/study-planner/internal/models"
	"github.com/manisharan-deep/study-planner/internal/notify"
	"github.com/manisharan-deep/study-planner/internal/store"
)

// Planner holds all application state for the lifetime of the process.
// State is never shared: collections are owned exclusively by this instance.
type Planner struct {
	mu       sync.Mutex
	logger   *zap.Logger
	store    *store.Store
	notifier notify.Notifier
	now      func() time.Time

	tasks      []*models.Task
	habits     []*models.Habit
	notes      []*models.Note
	groups     []*models.StudyGroup
	goals      engine.Goals
	settings   models.Settings
	analytics  *engine.Analytics
	focusStats models.FocusStats
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock overrides the time source. The clock is the sole source of
// "today" for every engine call, which keeps the planner testable.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithNotifier sets the notification sink.
func WithNotifier(n notify.Notifier) Option {
	return func(p *Planner) { p.notifier = n }
}

// New loads all persisted collections and returns a ready planner. A missing
// or malformed collection falls back to its documented default; no load
// failure is fatal.
func New(ctx context.Context, st *store.Store, log *zap.Logger, opts ...Option) (*Planner, error) {
	p := &Planner{
		logger:    log,
		store:     st,
		now:       time.Now,
		goals:     engine.DefaultGoals(),
		settings:  models.DefaultSettings(),
		analytics: engine.DefaultAnalytics(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.loadCollection(ctx, store.KeyTasks, &p.tasks)
	p.loadCollection(ctx, store.KeyHabits, &p.habits)
	p.loadCollection(ctx, store.KeyNotes, &p.notes)
	p.loadCollection(ctx, store.KeyStudyGroups, &p.groups)
	p.loadCollection(ctx, store.KeyGoals, &p.goals)
	p.loadCollection(ctx, store.KeySettings, &p.settings)
	p.loadCollection(ctx, store.KeyFocusStats, &p.focusStats)

	var analytics engine.Analytics
	if p.loadCollection(ctx, store.KeyAnalytics, &analytics) {
		p.analytics = &analytics
	}
	p.analytics.Normalize()

	return p, nil
}

// loadCollection unmarshals a snapshot into target, reporting whether a valid
// snapshot was applied. Absent keys and malformed payloads leave the default
// in place.
func (p *Planner) loadCollection(ctx context.Context, key string, target any) bool {
	data, err := p.store.Load(ctx, key)
	if err != nil {
		p.logger.Warn("load_collection_failed",
			zap.String("collection", key),
			zap.String("error", logger.SanitizeError(err)),
		)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		p.logger.Warn("malformed_collection_using_defaults",
			zap.String("collection", key),
			zap.String("error", logger.SanitizeError(err)),
		)
		return false
	}
	return true
}

// saveCollection persists a collection snapshot. Persistence is a
// fire-and-forget write after each mutation: failures are logged, never
// surfaced to the operation that triggered them.
func (p *Planner) saveCollection(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("marshal_collection_failed",
			zap.String("collection", key),
			zap.String("error", logger.SanitizeError(err)),
		)
		return
	}
	if err := p.store.Save(context.Background(), key, data); err != nil {
		p.logger.Error("save_collection_failed",
			zap.String("collection", key),
			zap.String("error", logger.SanitizeError(err)),
		)
	}
}

func (p *Planner) saveAll() {
	p.saveCollection(store.KeyTasks, p.tasks)
	p.saveCollection(store.KeyHabits, p.habits)
	p.saveCollection(store.KeyNotes, p.notes)
	p.saveCollection(store.KeyStudyGroups, p.groups)
	p.saveCollection(store.KeyGoals, p.goals)
	p.saveCollection(store.KeySettings, p.settings)
	p.saveCollection(store.KeyAnalytics, p.analytics)
	p.saveCollection(store.KeyFocusStats, p.focusStats)
}

// dispatch forwards engine events to the notification sink.
func (p *Planner) dispatch(events []engine.Event) {
	notify.Dispatch(p.notifier, events)
}

func (p *Planner) notifyUser(message string, severity notify.Severity) {
	if p.notifier != nil {
		p.notifier.Notify(message, severity)
	}
}

// Settings returns the current user settings.
func (p *Planner) Settings() models.Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

// UpdateSettings replaces the user settings.
func (p *Planner) UpdateSettings(s models.Settings) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settings = s
	p.saveCollection(store.KeySettings, p.settings)
}
