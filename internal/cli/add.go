package cli

import (
	"errors"
	"fmt"

	"github.com/quitlog/quitlog/internal/tracker"
)

type AddCmd struct {
	Title   string `arg:"" help:"What you are giving up on."`
	Reason  string `short:"r" help:"Why you are letting it go."`
	Planned string `short:"p" help:"When it was planned for (free text, defaults to now)."`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	result, err := ctx.Tracker.Add(tracker.AddInput{
		Title:     c.Title,
		Reason:    c.Reason,
		PlannedAt: c.Planned,
	})
	if err != nil {
		if errors.Is(err, tracker.ErrEmptyTitle) {
			return fmt.Errorf("write something first")
		}
		if err = warnPersist(err); err != nil {
			return err
		}
	}

	fmt.Printf("Gave up on: %s (ID: %s)\n", result.Item.Title, shortID(result.Item.ID))
	for _, def := range result.NewlyUnlocked {
		fmt.Printf("🏅 Badge unlocked: %s — %s\n", def.Title, def.Description)
	}
	return nil
}
