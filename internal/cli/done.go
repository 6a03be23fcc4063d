package cli

import "fmt"

type DoneCmd struct {
	ID string `arg:"" help:"Record id (or unique prefix) you followed through on after all."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	id, err := resolveID(c.ID, giveUpIDs(ctx.Tracker.GiveUps()))
	if err != nil {
		return err
	}

	if err := warnPersist(ctx.Tracker.Promote(id)); err != nil {
		return err
	}

	fmt.Println("Moved to the achieved list. " + ctx.Tracker.Subtitle())
	if _, err := ctx.Tracker.AdvanceSubtitle(); err != nil {
		return warnPersist(err)
	}
	return nil
}
