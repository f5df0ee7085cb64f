package planner

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/engine"
	"github.com/manisharan-deep/study-planner/internal/logger"
	"github.com/manisharan-deep/study-planner/internal/models"
	"github.com/manisharan-deep/study-planner/internal/store"
	"github.com/manisharan-deep/study-planner/internal/validation"
)

// NoteInput carries user-supplied fields for creating or updating a note.
type NoteInput struct {
	Title    string `validate:"required,min=1,max=200"`
	Category string `validate:"max=50"`
	Tags     []string
	Content  string
	Private  bool
}

// AddNote creates a note and awards creation XP.
func (p *Planner) AddNote(input NoteInput) (*models.Note, error) {
	input.Title = validation.SanitizeText(input.Title)
	if err := validation.Validate.Struct(&input); err != nil {
		return nil, fmt.Errorf("invalid note: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	note := &models.Note{
		ID:        uuid.New(),
		Title:     input.Title,
		Category:  input.Category,
		Tags:      input.Tags,
		Content:   input.Content,
		Private:   input.Private,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.notes = append(p.notes, note)

	var events []engine.Event
	p.analytics.Gamification, events = engine.AddXP(p.analytics.Gamification, engine.XPNoteCreated)

	p.saveCollection(store.KeyNotes, p.notes)
	p.saveCollection(store.KeyAnalytics, p.analytics)
	p.dispatch(events)

	p.logger.Info("note_created",
		zap.String("note_id", note.ID.String()),
		zap.String("title", logger.SanitizeTitle(note.Title)),
	)
	return note, nil
}

// UpdateNoteContent replaces a note's body and refreshes its timestamp.
func (p *Planner) UpdateNoteContent(id uuid.UUID, content string) (*models.Note, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, n := range p.notes {
		if n.ID == id {
			n.Content = content
			n.UpdatedAt = p.now()
			p.saveCollection(store.KeyNotes, p.notes)
			return n, nil
		}
	}
	return nil, fmt.Errorf("note %s not found", id)
}

// DeleteNote removes a note by explicit user action.
func (p *Planner) DeleteNote(id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, n := range p.notes {
		if n.ID == id {
			p.notes = append(p.notes[:i], p.notes[i+1:]...)
			p.saveCollection(store.KeyNotes, p.notes)
			return nil
		}
	}
	return fmt.Errorf("note %s not found", id)
}

// Notes returns all notes, optionally restricted to a category.
func (p *Planner) Notes(category string) []*models.Note {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*models.Note
	for _, n := range p.notes {
		if category != "" && n.Category != category {
			continue
		}
		out = append(out, n)
	}
	return out
}

// SearchNotes returns notes matching the query in title, content, or tags.
func (p *Planner) SearchNotes(query string) []*models.Note {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*models.Note
	for _, n := range p.notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}
