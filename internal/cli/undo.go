package cli

import (
	"errors"
	"fmt"

	"github.com/quitlog/quitlog/internal/tracker"
)

type UndoCmd struct{}

func (c *UndoCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	item, err := ctx.Tracker.Undo()
	switch {
	case errors.Is(err, tracker.ErrNothingToUndo):
		return fmt.Errorf("nothing to undo")
	case errors.Is(err, tracker.ErrUndoExpired):
		return fmt.Errorf("too late, the undo window has passed; 'quitlog restore' can still bring it back")
	}
	if err = warnPersist(err); err != nil {
		return err
	}

	fmt.Printf("Restored: %s\n", item.Title)
	return nil
}
