package cli

import "fmt"

type ListCmd struct {
	PinnedOnly bool `help:"Show only pinned records."`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	items := ctx.Tracker.GiveUps()
	if len(items) == 0 {
		fmt.Println("Nothing given up yet. Suspicious.")
		return nil
	}

	total, _ := ctx.Tracker.Totals()
	fmt.Printf("Given up (%d active, %d all-time):\n", len(items), total)
	for _, item := range items {
		if c.PinnedOnly && !item.Pinned {
			continue
		}
		fmt.Println(formatGiveUp(item))
	}
	return nil
}
