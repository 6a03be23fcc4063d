package badges

// Tier orders badges by rarity on the wall.
type Tier string

const (
	TierBronze     Tier = "bronze"
	TierSilver     Tier = "silver"
	TierGold       Tier = "gold"
	TierPlatinum   Tier = "platinum"
	TierDiamond    Tier = "diamond"
	TierDarkMatter Tier = "dark-matter"
)

// Icon names are restricted to the set the renderers know how to draw.
type Icon string

const (
	IconCoffee   Icon = "coffee"
	IconAward    Icon = "award"
	IconCloud    Icon = "cloud"
	IconFeather  Icon = "feather"
	IconSun      Icon = "sun"
	IconAnchor   Icon = "anchor"
	IconShield   Icon = "shield"
	IconStar     Icon = "star"
	IconZap      Icon = "zap"
	IconAperture Icon = "aperture"
	IconMoon     Icon = "moon"
	IconTriangle Icon = "triangle"
	IconHexagon  Icon = "hexagon"
	IconLayers   Icon = "layers"
)

// Definition is a static badge. Only its ID is ever persisted; the catalog
// itself ships with the binary.
type Definition struct {
	ID          string
	Title       string
	Description string
	Threshold   int // cumulative give-up count needed to unlock
	Tier        Tier
	Hidden      bool // mask title/description until unlocked
	Icon        Icon
}

const maskedLabel = "???"

// DisplayTitle returns the title, masked while a hidden badge is locked.
func (d Definition) DisplayTitle(unlocked bool) string {
	if d.Hidden && !unlocked {
		return maskedLabel
	}
	return d.Title
}

// DisplayDescription returns the description, masked while a hidden badge
// is locked.
func (d Definition) DisplayDescription(unlocked bool) string {
	if d.Hidden && !unlocked {
		return "Keep giving up to reveal this one."
	}
	return d.Description
}

// NewlyUnlocked returns every badge, in catalog order, whose threshold is
// met by total and whose id is not already in unlockedIDs. It is pure:
// callers persist the returned ids themselves. A badge is never re-locked,
// so totals only ever need to be compared upward.
func NewlyUnlocked(unlockedIDs []string, total int) []Definition {
	seen := make(map[string]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		seen[id] = true
	}

	var out []Definition
	for _, def := range Catalog {
		if def.Threshold <= total && !seen[def.ID] {
			out = append(out, def)
		}
	}
	return out
}

// Unlocked resolves persisted ids back to definitions, in catalog order.
// Unknown ids (from a newer or older catalog) are skipped.
func Unlocked(ids []string) []Definition {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}

	var out []Definition
	for _, def := range Catalog {
		if seen[def.ID] {
			out = append(out, def)
		}
	}
	return out
}

// ByID looks a badge up in the catalog.
func ByID(id string) (Definition, bool) {
	for _, def := range Catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
