package cli

import (
	"fmt"

	"github.com/quitlog/quitlog/internal/species"
)

type GroveCmd struct {
	Names bool `help:"List every discovered species by name."`
}

func (c *GroveCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	giveUpTotal, achievedTotal := ctx.Tracker.Totals()
	sea, sky := ctx.Tracker.Species()

	fmt.Println("The twin tree:")
	fmt.Printf("  roots reach %d m into the deep sea (%d records)\n", giveUpTotal*species.MetersPerRecord, giveUpTotal)
	fmt.Printf("  crown reaches %d m into the sky (%d records)\n", achievedTotal*species.MetersPerRecord, achievedTotal)
	fmt.Printf("  discovered: %d/%d sea species, %d/%d sky species\n",
		len(sea), species.MaxSpecies, len(sky), species.MaxSpecies)

	if c.Names {
		for _, name := range sea {
			fmt.Printf("    🌊 %s\n", name)
		}
		for _, name := range sky {
			fmt.Printf("    ☁  %s\n", name)
		}
	}
	return nil
}
