package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupMember is a participant in a study group
type GroupMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StudyGroup represents a shared study group. Groups are a plain persisted
// collection with no derived state.
type StudyGroup struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Code      string        `json:"code"`
	Members   []GroupMember `json:"members"`
	CreatedAt time.Time     `json:"created_at"`
}
