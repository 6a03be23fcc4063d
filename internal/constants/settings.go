package constants

import "time"

const (
	// UndoWindow is how long a deleted record stays restorable via undo.
	UndoWindow = 10 * time.Second

	// PlannedAtFormat renders the default "planned for" text when the user
	// leaves the field empty.
	PlannedAtFormat = "Jan 2 15:04"

	// LockfileName sits next to the store and guards against a second
	// writer on the same data.
	LockfileName = "quitlog.lock"
)
