package cli

import (
	"fmt"

	"github.com/quitlog/quitlog/internal/badges"
)

type BadgesCmd struct {
	All bool `help:"Include locked badges."`
}

func (c *BadgesCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	unlockedIDs := ctx.Tracker.UnlockedBadgeIDs()
	unlocked := make(map[string]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	fmt.Printf("Badges (%d/%d unlocked):\n", len(unlockedIDs), len(badges.Catalog))
	for _, def := range badges.Catalog {
		isUnlocked := unlocked[def.ID]
		if !isUnlocked && !c.All {
			continue
		}

		mark := "🔒"
		if isUnlocked {
			mark = "🏅"
		}
		fmt.Printf("  %s %-22s %s\n", mark, def.DisplayTitle(isUnlocked), def.DisplayDescription(isUnlocked))
	}
	return nil
}
