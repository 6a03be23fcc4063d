package models

import "time"

// GiveUp is a single logged intention the user decided not to pursue.
// It lives in the active collection until promoted or deleted.
type GiveUp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Reason    string    `json:"reason,omitempty"`
	PlannedAt string    `json:"planned_at"` // free text, not validated
	CreatedAt time.Time `json:"created_at"`
	Pinned    bool      `json:"pinned,omitempty"`
}

// Achieved is a give-up the user later followed through on. The original
// record leaves the active collection when this one is created.
type Achieved struct {
	GiveUp
	AchievedAt time.Time `json:"achieved_at"`
}
