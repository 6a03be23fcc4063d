// Package species derives the two decorative discovery lists from the
// cumulative counters. The lists are append-only: entries are generated
// once, named by position, and never renamed, reordered, or truncated.
package species

import "fmt"

const (
	// MetersPerRecord is how much the world tree grows per record.
	MetersPerRecord = 100
	// Step is the growth, in meters, that reveals one new species.
	Step = 100
	// MaxSpecies caps each list.
	MaxSpecies = 100

	// SeaPrefix names sea discoveries, driven by the give-up total.
	SeaPrefix = "abyss-unknown"
	// SkyPrefix names sky discoveries, driven by the achieved total.
	SkyPrefix = "sky-unknown"
)

// TargetCount returns how many species a cumulative total should have
// revealed. Monotonic in total, capped at MaxSpecies.
func TargetCount(total int) int {
	if total < 0 {
		return 0
	}
	n := total * MetersPerRecord / Step
	if n > MaxSpecies {
		n = MaxSpecies
	}
	return n
}

// Name builds the fixed name for the species at a 1-based position.
func Name(prefix string, position int) string {
	return fmt.Sprintf("%s-%03d", prefix, position)
}

// Extend appends generated entries until the list reaches target. Existing
// entries are left untouched; if the list is already at or past target it
// is returned unchanged.
func Extend(list []string, prefix string, target int) []string {
	if len(list) >= target {
		return list
	}
	out := make([]string, len(list), target)
	copy(out, list)
	for i := len(list); i < target; i++ {
		out = append(out, Name(prefix, i+1))
	}
	return out
}
