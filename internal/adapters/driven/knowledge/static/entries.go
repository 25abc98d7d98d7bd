package static

import "github.com/TonyLeary/nms-companion/internal/core/domain"

// The curated table. Order matters: ties in the local scorer keep
// table order, so the most commonly asked-about items come first.
var entries = []domain.KnowledgeEntry{
	{
		ID:      "nanites",
		Title:   "Nanites",
		Aliases: []string{"nanite", "nanite clusters", "nanite cluster"},
		Where:   "Earned from scanning fauna and flora, uploading discoveries, and picked up in abandoned buildings and derelict freighters.",
		How:     "Refine Pugneum 5:1, sell upgrade modules you don't need, or run derelict freighters for a big haul per clearance fee.",
		Tips: []string{
			"Upload every discovery the moment you land; it adds up fast.",
			"A Pugneum farm at a sentinel pillar pays for itself quickly.",
			"Expedition rewards often include large nanite bundles.",
		},
		References: []string{
			"In-game guide: Currencies",
			"Anomaly vendor list, Tier 2",
		},
		CommunityNotes: []string{
			"Most players consider derelict freighters the steadiest nanite loop once you can afford the fee.",
			"Scanning pays double on exotic biome planets you haven't catalogued yet.",
		},
		FAQ: []domain.FAQItem{
			{
				Question: "What do nanites buy?",
				Answer:   "Upgrade modules at technology vendors, ship trade-in discounts, and appearance changes.",
			},
			{
				Question: "Can I convert units to nanites?",
				Answer:   "Not directly. Buy items with units, refine or resell them, and keep the nanite by-product.",
			},
		},
		Storyboard: &domain.Storyboard{
			Title: "A steady nanite loop",
			Note:  "Ten minutes per cycle once the route is set.",
			Segments: []domain.StoryboardSegment{
				{Label: "Scan", Detail: "Land on an uncatalogued planet and scan everything in sight."},
				{Label: "Upload", Detail: "Upload the discoveries from your log before leaving."},
				{Label: "Refine", Detail: "Feed collected Pugneum into a refiner, 5 to 1."},
				{Label: "Repeat", Detail: "Warp to the next system and start over."},
			},
		},
	},
	{
		ID:      "radiant-heart",
		Title:   "Radiant Heart",
		Aliases: []string{"radiant hearts", "heart of the sentinel"},
		Where:   "Dropped by corrupted sentinels on dissonant planets; the purple system filter on the galaxy map marks candidates.",
		How:     "Break the heart down in a refiner for inverted mirrors, or keep it to trade at the Anomaly for high-tier upgrade modules.",
		Tips: []string{
			"Bring a fully charged mining beam; corrupted sentinels swarm.",
			"Dissonance resonators on the same planets drop echo locators too.",
			"Check the planet description for 'dissonant' before landing.",
		},
		References: []string{
			"In-game guide: Corrupted worlds",
			"Wiki entry: Radiant Heart",
		},
		CommunityNotes: []string{
			"Farming runs go faster in a Minotaur; the swarm can't stagger it.",
		},
		FAQ: []domain.FAQItem{
			{
				Question: "Is the Radiant Heart worth selling?",
				Answer:   "Units-wise it's mediocre. Refining or trading it at the Anomaly gets far more value.",
			},
		},
		Storyboard: &domain.Storyboard{
			Title: "Radiant Heart run",
			Note:  "One heart per corrupted sentinel wave, reliably.",
			Segments: []domain.StoryboardSegment{
				{Label: "Locate", Detail: "Filter the galaxy map for purple dissonant systems."},
				{Label: "Provoke", Detail: "Attack any corrupted sentinel to start the wave."},
				{Label: "Collect", Detail: "Clear the wave and pick the heart off the last quad."},
			},
		},
	},
	{
		ID:      "units",
		Title:   "Units",
		Aliases: []string{"unit", "money", "credits"},
		Where:   "Everywhere trade happens: galactic terminals, pilots at trade posts, and mission boards.",
		How:     "Early on, sell scanned discoveries and surplus resources. Later, chlorine expansion or stasis devices print units at scale.",
		Tips: []string{
			"Chlorine plus oxygen in a refiner is the classic early-game expansion loop.",
			"Scanner upgrades multiply fauna payouts by a huge factor.",
			"Crashed ships can be repaired and traded in for profit.",
		},
		References: []string{
			"In-game guide: Currencies",
			"Trade terminal price tables",
		},
		CommunityNotes: []string{
			"Most long-term players stop worrying about units after their first stasis-device factory.",
		},
		FAQ: []domain.FAQItem{
			{
				Question: "What's the fastest early money?",
				Answer:   "Scanner upgrades plus fauna scanning. A single rich planet can fund your first freighter.",
			},
		},
	},
	{
		ID:      "salvaged-data",
		Title:   "Salvaged Data",
		Aliases: []string{"salvage data", "buried technology"},
		Where:   "Dug up at buried technology modules on any planet; the analysis visor marks them with a wrench icon.",
		How:     "Spend it at the Anomaly construction research station to unlock base building parts.",
		Tips: []string{
			"Buried modules respawn; a marked loop on one planet is enough.",
			"The Minotaur's scanner highlights buried technology automatically.",
		},
		References: []string{
			"In-game guide: Base building",
		},
		CommunityNotes: []string{
			"Spend on the short-range teleporter early; it pays off in every base after.",
		},
		FAQ: []domain.FAQItem{
			{
				Question: "Should I sell salvaged data?",
				Answer:   "No. Unlocks first - the units you'd get are trivial compared to the blueprints.",
			},
		},
	},
	{
		ID:      "storm-crystal",
		Title:   "Storm Crystal",
		Aliases: []string{"storm crystals"},
		Where:   "Spawn on extreme-weather planets during storms; they glow and only surface while the storm lasts.",
		How:     "Grab them on foot or by exocraft during the storm window, then sell or use them for the exocraft summoning station.",
		Tips: []string{
			"Hazard protection drains fast; pack sodium.",
			"They sell high at any galactic terminal.",
		},
		References: []string{
			"In-game guide: Hazardous flora and minerals",
		},
		CommunityNotes: []string{
			"A Roamer with the hazard module makes storm runs trivial.",
		},
	},
	{
		ID:      "activated-indium",
		Title:   "Activated Indium",
		Aliases: []string{"indium", "activated indium farm"},
		Where:   "Mined on activated indium planets in blue star systems; look for the metallic world icon.",
		How:     "Set up mineral extractors over a rich deposit and warp back to collect; it sells near the top of the raw-material table.",
		Tips: []string{
			"Supply depots buffer extraction while you're away.",
			"Blue systems need the indium warp drive upgrade.",
		},
		References: []string{
			"In-game guide: Mining and extraction",
		},
		CommunityNotes: []string{
			"Prices dip if you flood one terminal; spread sales across systems.",
		},
	},
	{
		ID:      "quicksilver",
		Title:   "Quicksilver",
		Aliases: []string{"quick silver"},
		Where:   "Earned only from Nexus community missions aboard the Anomaly.",
		How:     "Spend it at the quicksilver synthesis companion on Anomaly-exclusive cosmetics and the void egg.",
		Tips: []string{
			"Daily Nexus missions cap out fast; do them whenever you dock.",
		},
		References: []string{
			"Anomaly vendor list, quicksilver synthesis companion",
		},
		CommunityNotes: []string{
			"Community research rewards rotate; check what's unlocked before grinding.",
		},
		FAQ: []domain.FAQItem{
			{
				Question: "Can I buy quicksilver with units?",
				Answer:   "No. Nexus missions are the only source.",
			},
		},
	},
	{
		ID:      "void-egg",
		Title:   "Void Egg",
		Aliases: []string{"void eggs", "living ship egg"},
		Where:   "Bought for quicksilver from the synthesis companion aboard the Anomaly.",
		How:     "Carry it while warping until it sings, then follow the Starbirth mission chain to hatch a living ship.",
		Tips: []string{
			"Starbirth steps gate behind real-time waits; start it before a long session.",
		},
		References: []string{
			"Mission log: Starbirth",
		},
		CommunityNotes: []string{
			"The egg reacts roughly every five warps; portal coordinates speed the chain up.",
		},
		Storyboard: &domain.Storyboard{
			Title: "Hatching a living ship",
			Note:  "The whole chain takes a few sessions.",
			Segments: []domain.StoryboardSegment{
				{Label: "Buy", Detail: "Trade quicksilver for the void egg on the Anomaly."},
				{Label: "Warp", Detail: "Keep warping until the egg begins to sing."},
				{Label: "Follow", Detail: "Chase each Starbirth waypoint as it unlocks."},
			},
		},
	},
}
