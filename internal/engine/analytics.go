package engine

// SessionCounts tracks completed focus sessions.
type SessionCounts struct {
	Today int `json:"today"`
	Total int `json:"total"`
}

// Analytics bundles the derived-state records persisted under the analytics
// collection key: the activity ledger, streaks, session counters, the
// gamification currency, and the unlocked achievement set.
type Analytics struct {
	Ledger       Ledger        `json:"ledger"`
	Streaks      Streaks       `json:"streaks"`
	Sessions     SessionCounts `json:"sessions"`
	Gamification               // points/level/xp flatten into the document
	Achievements []string      `json:"achievements,omitempty"`
}

// DefaultAnalytics returns the analytics state for a fresh install.
func DefaultAnalytics() *Analytics {
	return &Analytics{
		Ledger:       *NewLedger(),
		Gamification: Gamification{Level: 1},
	}
}

// Normalize repairs an analytics document loaded from storage: nil maps are
// allocated and the level floor is restored so engine invariants hold.
func (a *Analytics) Normalize() {
	a.Ledger.ensure()
	if a.Level < 1 {
		a.Level = 1
	}
	if a.XP < 0 {
		a.XP = 0
	}
	if a.Points < 0 {
		a.Points = 0
	}
}
