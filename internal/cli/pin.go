package cli

import "fmt"

type PinCmd struct {
	ID string `arg:"" help:"Record id (or unique prefix)."`
}

func (c *PinCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	id, err := resolveID(c.ID, giveUpIDs(ctx.Tracker.GiveUps()))
	if err != nil {
		return err
	}

	if err := warnPersist(ctx.Tracker.TogglePin(id)); err != nil {
		return err
	}

	fmt.Printf("Toggled pin on %s\n", shortID(id))
	return nil
}
