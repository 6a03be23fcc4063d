package cli

import (
	"fmt"
	"time"

	"github.com/quitlog/quitlog/internal/lock"
	"github.com/quitlog/quitlog/internal/species"
	"github.com/quitlog/quitlog/internal/storage"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	if storeReachable {
		if err := checkDuplicateIDs(ctx); err != nil {
			fmt.Printf("❌ Record ids unique: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Record ids unique: OK\n")
		}

		if err := checkCounters(ctx); err != nil {
			fmt.Printf("❌ Counter integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Counter integrity: OK\n")
		}

		if err := checkSpecies(ctx); err != nil {
			fmt.Printf("❌ Species lists: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Species lists: OK\n")
		}
	} else {
		fmt.Printf("⊘ Record ids unique: SKIPPED (store not reachable)\n")
		fmt.Printf("⊘ Counter integrity: SKIPPED (store not reachable)\n")
		fmt.Printf("⊘ Species lists: SKIPPED (store not reachable)\n")
	}

	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock sanity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock sanity: OK\n")
	}

	if pid, alive, ok := lock.Holder(ctx.Store.GetConfigPath()); ok && alive {
		fmt.Printf("⚠ Lockfile: held by pid %d\n", pid)
	} else if ok {
		fmt.Printf("⚠ Lockfile: stale (pid %d not running)\n", pid)
	} else {
		fmt.Printf("✓ Lockfile: none\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	// For SQLite, also run a trivial query against the handle.
	if sqliteBackend, ok := ctx.Store.Backend().(*storage.SQLiteBackend); ok {
		db := sqliteBackend.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkDuplicateIDs(ctx *Context) error {
	seen := make(map[string]bool)
	for _, item := range ctx.Tracker.GiveUps() {
		if seen[item.ID] {
			return fmt.Errorf("duplicate id in active collection: %s", item.ID)
		}
		seen[item.ID] = true
	}
	achievedSeen := make(map[string]bool)
	for _, item := range ctx.Tracker.Achieved() {
		if achievedSeen[item.ID] {
			return fmt.Errorf("duplicate id in achieved collection: %s", item.ID)
		}
		achievedSeen[item.ID] = true
		if seen[item.ID] {
			return fmt.Errorf("id present in both collections: %s", item.ID)
		}
	}
	return nil
}

func checkCounters(ctx *Context) error {
	giveUpTotal, achievedTotal := ctx.Tracker.Totals()
	active := len(ctx.Tracker.GiveUps())
	achieved := len(ctx.Tracker.Achieved())

	// Totals are all-time and deletes never decrement them, so they can
	// only be at or above what the current collections account for.
	if giveUpTotal < active+achieved {
		return fmt.Errorf("give-up total %d is below active+achieved (%d)", giveUpTotal, active+achieved)
	}
	if achievedTotal < achieved {
		return fmt.Errorf("achieved total %d is below achieved collection length (%d)", achievedTotal, achieved)
	}
	return nil
}

func checkSpecies(ctx *Context) error {
	giveUpTotal, achievedTotal := ctx.Tracker.Totals()
	sea, sky := ctx.Tracker.Species()

	if len(sea) > species.TargetCount(giveUpTotal) {
		return fmt.Errorf("sea species list is longer (%d) than its target (%d)", len(sea), species.TargetCount(giveUpTotal))
	}
	if len(sky) > species.TargetCount(achievedTotal) {
		return fmt.Errorf("sky species list is longer (%d) than its target (%d)", len(sky), species.TargetCount(achievedTotal))
	}

	for i, name := range sea {
		if name != species.Name(species.SeaPrefix, i+1) {
			return fmt.Errorf("sea species %d has unexpected name %q", i+1, name)
		}
	}
	for i, name := range sky {
		if name != species.Name(species.SkyPrefix, i+1) {
			return fmt.Errorf("sky species %d has unexpected name %q", i+1, name)
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
