package cli

import "fmt"

type AchievedListCmd struct{}

func (c *AchievedListCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	items := ctx.Tracker.Achieved()
	if len(items) == 0 {
		fmt.Println("No diligence on record. Come back when you relapse into effort.")
		return nil
	}

	fmt.Println(ctx.Tracker.Subtitle())
	if _, err := ctx.Tracker.AdvanceSubtitle(); err != nil {
		if err = warnPersist(err); err != nil {
			return err
		}
	}

	_, total := ctx.Tracker.Totals()
	fmt.Printf("Achieved anyway (%d listed, %d all-time):\n", len(items), total)
	for _, item := range items {
		fmt.Println(formatAchieved(item))
	}
	return nil
}

type AchievedPinCmd struct {
	ID string `arg:"" help:"Record id (or unique prefix)."`
}

func (c *AchievedPinCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	id, err := resolveID(c.ID, achievedIDs(ctx.Tracker.Achieved()))
	if err != nil {
		return err
	}

	if err := warnPersist(ctx.Tracker.ToggleAchievedPin(id)); err != nil {
		return err
	}

	fmt.Printf("Toggled pin on %s\n", shortID(id))
	return nil
}

type AchievedDeleteCmd struct {
	ID string `arg:"" help:"Record id (or unique prefix)."`
}

func (c *AchievedDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	id, err := resolveID(c.ID, achievedIDs(ctx.Tracker.Achieved()))
	if err != nil {
		return err
	}

	removed, err := ctx.Tracker.DeleteAchieved(id)
	if err = warnPersist(err); err != nil {
		return err
	}

	fmt.Printf("Struck from the record: %s\n", removed.Title)
	return nil
}
