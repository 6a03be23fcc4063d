package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/quitlog/quitlog/internal/poster"
)

type PosterCmd struct {
	Mode string `arg:"" enum:"badges,species" help:"Poster to render (badges|species)."`
	Out  string `short:"o" type:"path" help:"Write the poster to a file instead of stdout."`
}

func (c *PosterCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	profile := ctx.Tracker.Profile()

	var render string
	switch c.Mode {
	case "badges":
		unlocked := ctx.Tracker.UnlockedBadges()
		if len(unlocked) == 0 {
			return fmt.Errorf("no badges yet; give up on something first")
		}
		render = poster.Badges(unlocked, profile, time.Now())
	case "species":
		sea, sky := ctx.Tracker.Species()
		if len(sea)+len(sky) == 0 {
			return fmt.Errorf("no species discovered yet; the tree needs records to grow")
		}
		render = poster.Species(len(sea), len(sky), profile, time.Now())
	}

	if c.Out != "" {
		if err := os.WriteFile(c.Out, []byte(render+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write poster: %w", err)
		}
		fmt.Printf("Saved poster to %s\n", c.Out)
		return nil
	}

	fmt.Println(render)
	return nil
}
