package planner

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/export"
	"github.com/manisharan-deep/study-planner/internal/models"
	"github.com/manisharan-deep/study-planner/internal/notify"
)

// ExportBundle snapshots every collection into a backup document.
func (p *Planner) ExportBundle() *export.Bundle {
	p.mu.Lock()
	defer p.mu.Unlock()

	goals := p.goals
	settings := p.settings
	analytics := *p.analytics
	focusStats := p.focusStats

	// Collections are emitted as concrete lists, never null: on import, an
	// absent collection keeps current data, so an export of an empty planner
	// must still say "empty", not "absent".
	return &export.Bundle{
		Tasks:       append([]*models.Task{}, p.tasks...),
		Goals:       &goals,
		Settings:    &settings,
		Analytics:   &analytics,
		StudyGroups: append([]*models.StudyGroup{}, p.groups...),
		Notes:       append([]*models.Note{}, p.notes...),
		Habits:      append([]*models.Habit{}, p.habits...),
		FocusStats:  &focusStats,
		ExportDate:  p.now(),
	}
}

// ImportBundle replaces the in-memory collections with the bundle's contents
// wholesale. Fields absent from the bundle keep their current value. The
// bundle has already been validated by export.ParseBundle, so the
// replacement is all-or-nothing by construction.
func (p *Planner) ImportBundle(b *export.Bundle) error {
	if b == nil {
		return fmt.Errorf("import document is empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if b.Tasks != nil {
		p.tasks = b.Tasks
	}
	if b.Goals != nil {
		p.goals = *b.Goals
	}
	if b.Settings != nil {
		p.settings = *b.Settings
	}
	if b.Analytics != nil {
		analytics := *b.Analytics
		analytics.Normalize()
		p.analytics = &analytics
	}
	if b.StudyGroups != nil {
		p.groups = b.StudyGroups
	}
	if b.Notes != nil {
		p.notes = b.Notes
	}
	if b.Habits != nil {
		p.habits = b.Habits
	}
	if b.FocusStats != nil {
		p.focusStats = *b.FocusStats
	}

	p.saveAll()
	p.notifyUser("Data imported successfully!", notify.SeveritySuccess)
	p.logger.Info("bundle_imported",
		zap.Int("tasks", len(p.tasks)),
		zap.Int("habits", len(p.habits)),
		zap.Int("notes", len(p.notes)),
	)
	return nil
}

// CalendarDocument renders all due-dated tasks as an iCalendar document.
func (p *Planner) CalendarDocument() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return export.Calendar(p.tasks)
}
