package biome

import "github.com/OCharnyshevich/biome-atlas/pkg/cubegen"

var names = map[cubegen.Biome]string{
	cubegen.Ocean:                  "ocean",
	cubegen.Plains:                 "plains",
	cubegen.Desert:                 "desert",
	cubegen.WindsweptHills:         "windswept_hills",
	cubegen.Forest:                 "forest",
	cubegen.Taiga:                  "taiga",
	cubegen.Swamp:                  "swamp",
	cubegen.River:                  "river",
	cubegen.NetherWastes:           "nether_wastes",
	cubegen.TheEnd:                 "the_end",
	cubegen.FrozenOcean:            "frozen_ocean",
	cubegen.FrozenRiver:            "frozen_river",
	cubegen.SnowyPlains:            "snowy_plains",
	cubegen.MushroomFields:         "mushroom_fields",
	cubegen.Beach:                  "beach",
	cubegen.Jungle:                 "jungle",
	cubegen.SparseJungle:           "sparse_jungle",
	cubegen.DeepOcean:              "deep_ocean",
	cubegen.StonyShore:             "stony_shore",
	cubegen.SnowyBeach:             "snowy_beach",
	cubegen.BirchForest:            "birch_forest",
	cubegen.DarkForest:             "dark_forest",
	cubegen.SnowyTaiga:             "snowy_taiga",
	cubegen.OldGrowthPineTaiga:     "old_growth_pine_taiga",
	cubegen.WindsweptForest:        "windswept_forest",
	cubegen.Savanna:                "savanna",
	cubegen.SavannaPlateau:         "savanna_plateau",
	cubegen.Badlands:               "badlands",
	cubegen.WoodedBadlands:         "wooded_badlands",
	cubegen.SmallEndIslands:        "small_end_islands",
	cubegen.EndMidlands:            "end_midlands",
	cubegen.EndHighlands:           "end_highlands",
	cubegen.EndBarrens:             "end_barrens",
	cubegen.WarmOcean:              "warm_ocean",
	cubegen.LukewarmOcean:          "lukewarm_ocean",
	cubegen.ColdOcean:              "cold_ocean",
	cubegen.DeepWarmOcean:          "deep_warm_ocean",
	cubegen.DeepLukewarmOcean:      "deep_lukewarm_ocean",
	cubegen.DeepColdOcean:          "deep_cold_ocean",
	cubegen.DeepFrozenOcean:        "deep_frozen_ocean",
	cubegen.SunflowerPlains:        "sunflower_plains",
	cubegen.WindsweptGravellyHills: "windswept_gravelly_hills",
	cubegen.FlowerForest:           "flower_forest",
	cubegen.IceSpikes:              "ice_spikes",
	cubegen.OldGrowthBirchForest:   "old_growth_birch_forest",
	cubegen.ErodedBadlands:         "eroded_badlands",
	cubegen.BambooJungle:           "bamboo_jungle",
	cubegen.SoulSandValley:         "soul_sand_valley",
	cubegen.CrimsonForest:          "crimson_forest",
	cubegen.WarpedForest:           "warped_forest",
	cubegen.BasaltDeltas:           "basalt_deltas",
	cubegen.DripstoneCaves:         "dripstone_caves",
	cubegen.LushCaves:              "lush_caves",
	cubegen.Meadow:                 "meadow",
	cubegen.Grove:                  "grove",
	cubegen.SnowySlopes:            "snowy_slopes",
	cubegen.JaggedPeaks:            "jagged_peaks",
	cubegen.FrozenPeaks:            "frozen_peaks",
	cubegen.StonyPeaks:             "stony_peaks",
	cubegen.DeepDark:               "deep_dark",
	cubegen.MangroveSwamp:          "mangrove_swamp",
	cubegen.CherryGrove:            "cherry_grove",
	cubegen.PaleGarden:             "pale_garden",
}

// Name returns the registry-style name for b, or "unknown" for ids
// outside the known set.
func Name(b cubegen.Biome) string {
	if n, ok := names[b]; ok {
		return n
	}
	return "unknown"
}

// Known returns all biome ids with a registered name, in unspecified order.
func Known() []cubegen.Biome {
	out := make([]cubegen.Biome, 0, len(names))
	for b := range names {
		out = append(out, b)
	}
	return out
}
