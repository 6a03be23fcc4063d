package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quitlog/quitlog/internal/constants"
	"github.com/quitlog/quitlog/internal/models"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Record id (or unique prefix)."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	id, err := resolveID(c.ID, giveUpIDs(ctx.Tracker.GiveUps()))
	if err != nil {
		return err
	}

	removed, err := ctx.Tracker.Delete(id)
	if err = warnPersist(err); err != nil {
		return err
	}

	quip := constants.DeleteQuips[len(removed.ID)%len(constants.DeleteQuips)]
	fmt.Println(quip)

	fmt.Fprintf(os.Stderr, "Changed your mind? 'quitlog undo' within %s.\n", constants.UndoWindow)
	// After the window the record itself is the restore token.
	raw, jsonErr := json.Marshal(removed)
	if jsonErr == nil {
		fmt.Fprintf(os.Stderr, "Later: quitlog restore '%s'\n", raw)
	}
	return nil
}

type RestoreCmd struct {
	Record string `arg:"" help:"The JSON record printed by delete."`
}

func (c *RestoreCmd) Run(ctx *Context) error {
	var item models.GiveUp
	if err := json.Unmarshal([]byte(c.Record), &item); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	if item.ID == "" || item.Title == "" {
		return fmt.Errorf("invalid record: id and title are required")
	}

	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	if err := warnPersist(ctx.Tracker.Restore(item)); err != nil {
		return err
	}

	fmt.Printf("Restored: %s\n", item.Title)
	return nil
}
