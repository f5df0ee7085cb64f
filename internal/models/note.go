package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note represents a free-form study note
type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Content   string    `json:"content"`
	Private   bool      `json:"private,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WordCount returns the number of whitespace-separated words in the note body.
func (n *Note) WordCount() int {
	return len(strings.Fields(n.Content))
}

// Matches reports whether the note matches a case-insensitive search query
// against its title, content, or tags.
func (n *Note) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
