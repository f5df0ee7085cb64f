package planner

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/manisharan-deep/study-planner/internal/models"
	"github.com/manisharan-deep/study-planner/internal/notify"
	"github.com/manisharan-deep/study-planner/internal/store"
	"github.com/manisharan-deep/study-planner/internal/validation"
)

// CreateGroup creates a study group with the user as its only member.
func (p *Planner) CreateGroup(name string) (*models.StudyGroup, error) {
	name = validation.SanitizeText(name)
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	id := uuid.New()
	group := &models.StudyGroup{
		ID:        id,
		Name:      name,
		Code:      inviteCode(id),
		Members:   []models.GroupMember{{ID: "user", Name: "You"}},
		CreatedAt: p.now(),
	}
	p.groups = append(p.groups, group)
	p.saveCollection(store.KeyStudyGroups, p.groups)
	p.notifyUser(fmt.Sprintf("Study group %q created!", name), notify.SeveritySuccess)
	return group, nil
}

// JoinGroup records membership in a group identified by an invite code.
// There is no network backend; the group is materialized locally.
func (p *Planner) JoinGroup(code string) (*models.StudyGroup, error) {
	code = validation.SanitizeText(code)
	if code == "" {
		return nil, fmt.Errorf("group code is required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	group := &models.StudyGroup{
		ID:   uuid.New(),
		Name: fmt.Sprintf("Group %s", code),
		Code: code,
		Members: []models.GroupMember{
			{ID: "user", Name: "You"},
			{ID: "buddy", Name: "Study Buddy"},
		},
		CreatedAt: p.now(),
	}
	p.groups = append(p.groups, group)
	p.saveCollection(store.KeyStudyGroups, p.groups)
	p.notifyUser("Joined study group!", notify.SeveritySuccess)
	return group, nil
}

// inviteCode derives a short shareable code from the group identity.
func inviteCode(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:6])
}

// Groups returns all study groups.
func (p *Planner) Groups() []*models.StudyGroup {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*models.StudyGroup(nil), p.groups...)
}
