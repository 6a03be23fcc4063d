package tracker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTitle rejects creation with a blank title.
	ErrEmptyTitle = errors.New("write something first")
	// ErrNotFound means the operation targeted an id that is not in the
	// collection. Never fatal; callers surface it and move on.
	ErrNotFound = errors.New("record not found")
	// ErrNothingToUndo means no deletion is awaiting undo.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrUndoExpired means the undo deadline has passed.
	ErrUndoExpired = errors.New("undo window has passed")
)

// PersistError reports slot writes that failed after the in-memory state
// already advanced. Memory and storage are out of sync until the next
// reload; the caller decides whether to warn, retry, or bail.
type PersistError struct {
	Slots []string
	Err   error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", strings.Join(e.Slots, ", "), e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
