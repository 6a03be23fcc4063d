package models

import "time"

// PendingDeletion is the one-shot undo buffer armed by a delete. It is
// persisted so an undo can come from a later process; the deadline is
// checked when the undo is attempted, not by a timer.
type PendingDeletion struct {
	Item      GiveUp    `json:"item"`
	ExpiresAt time.Time `json:"expires_at"`
}
