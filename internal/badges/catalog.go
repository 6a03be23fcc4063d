package badges

// Catalog is the full badge list, ordered by threshold. Evaluation and
// rendering both rely on this order, so keep it sorted when adding badges.
var Catalog = []Definition{
	{
		ID:          "first-surrender",
		Title:       "First Surrender",
		Description: "You gave up on one thing. Everyone starts somewhere.",
		Threshold:   1,
		Tier:        TierBronze,
		Icon:        IconCoffee,
	},
	{
		ID:          "warming-up",
		Title:       "Warming Up",
		Description: "Three plans abandoned. You're getting the hang of this.",
		Threshold:   3,
		Tier:        TierBronze,
		Icon:        IconFeather,
	},
	{
		ID:          "hands-off",
		Title:       "Hands Off",
		Description: "Five things you officially no longer have to do.",
		Threshold:   5,
		Tier:        TierBronze,
		Icon:        IconCloud,
	},
	{
		ID:          "double-digits",
		Title:       "Double Digits",
		Description: "Ten give-ups. Your calendar has never been lighter.",
		Threshold:   10,
		Tier:        TierSilver,
		Icon:        IconSun,
	},
	{
		ID:          "steady-quitter",
		Title:       "Steady Quitter",
		Description: "Twenty down. Quitting is a practice too.",
		Threshold:   20,
		Tier:        TierSilver,
		Icon:        IconAnchor,
	},
	{
		ID:          "load-shedder",
		Title:       "Load Shedder",
		Description: "Thirty burdens set down, on purpose, in writing.",
		Threshold:   30,
		Tier:        TierSilver,
		Icon:        IconLayers,
	},
	{
		ID:          "half-century",
		Title:       "Half Century",
		Description: "Fifty entries. A disciplined lack of discipline.",
		Threshold:   50,
		Tier:        TierGold,
		Icon:        IconAward,
	},
	{
		ID:          "seventy-percent",
		Title:       "Seventy and Counting",
		Description: "Seventy plans released back into the wild.",
		Threshold:   70,
		Tier:        TierGold,
		Icon:        IconShield,
	},
	{
		ID:          "century-of-rest",
		Title:       "Century of Rest",
		Description: "One hundred give-ups. A round number of peace.",
		Threshold:   100,
		Tier:        TierPlatinum,
		Icon:        IconStar,
	},
	{
		ID:          "night-shift",
		Title:       "Night Shift",
		Description: "A hundred and fifty. The moon approves.",
		Threshold:   150,
		Tier:        TierPlatinum,
		Hidden:      true,
		Icon:        IconMoon,
	},
	{
		ID:          "lightning-round",
		Title:       "Lightning Round",
		Description: "Two hundred. Giving up at the speed of thought.",
		Threshold:   200,
		Tier:        TierDiamond,
		Hidden:      true,
		Icon:        IconZap,
	},
	{
		ID:          "wide-aperture",
		Title:       "Wide Aperture",
		Description: "Three hundred things you can now see clearly past.",
		Threshold:   300,
		Tier:        TierDiamond,
		Hidden:      true,
		Icon:        IconAperture,
	},
	{
		ID:          "event-horizon",
		Title:       "Event Horizon",
		Description: "Five hundred. Plans go in, nothing comes out.",
		Threshold:   500,
		Tier:        TierDarkMatter,
		Hidden:      true,
		Icon:        IconTriangle,
	},
	{
		ID:          "dark-matter",
		Title:       "Dark Matter",
		Description: "A thousand give-ups. Invisible, and yet it holds everything together.",
		Threshold:   1000,
		Tier:        TierDarkMatter,
		Hidden:      true,
		Icon:        IconHexagon,
	},
}
