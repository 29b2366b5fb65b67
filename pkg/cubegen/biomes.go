package cubegen

// Biome is an opaque biome identifier. Values follow the numeric biome
// ids the game used through 1.17 plus the post-1.18 additions, so maps
// rendered from them line up with community tooling.
type Biome int32

// BiomeNone is returned for queries against an unconfigured generator.
const BiomeNone Biome = -1

const (
	Ocean                  Biome = 0
	Plains                 Biome = 1
	Desert                 Biome = 2
	WindsweptHills         Biome = 3
	Forest                 Biome = 4
	Taiga                  Biome = 5
	Swamp                  Biome = 6
	River                  Biome = 7
	NetherWastes           Biome = 8
	TheEnd                 Biome = 9
	FrozenOcean            Biome = 10
	FrozenRiver            Biome = 11
	SnowyPlains            Biome = 12
	MushroomFields         Biome = 14
	Beach                  Biome = 16
	Jungle                 Biome = 21
	SparseJungle           Biome = 23
	DeepOcean              Biome = 24
	StonyShore             Biome = 25
	SnowyBeach             Biome = 26
	BirchForest            Biome = 27
	DarkForest             Biome = 29
	SnowyTaiga             Biome = 30
	OldGrowthPineTaiga     Biome = 32
	WindsweptForest        Biome = 34
	Savanna                Biome = 35
	SavannaPlateau         Biome = 36
	Badlands               Biome = 37
	WoodedBadlands         Biome = 38
	SmallEndIslands        Biome = 40
	EndMidlands            Biome = 41
	EndHighlands           Biome = 42
	EndBarrens             Biome = 43
	WarmOcean              Biome = 44
	LukewarmOcean          Biome = 45
	ColdOcean              Biome = 46
	DeepWarmOcean          Biome = 47
	DeepLukewarmOcean      Biome = 48
	DeepColdOcean          Biome = 49
	DeepFrozenOcean        Biome = 50
	SunflowerPlains        Biome = 129
	WindsweptGravellyHills Biome = 131
	FlowerForest           Biome = 132
	IceSpikes              Biome = 140
	OldGrowthBirchForest   Biome = 155
	ErodedBadlands         Biome = 165
	BambooJungle           Biome = 168
	SoulSandValley         Biome = 170
	CrimsonForest          Biome = 171
	WarpedForest           Biome = 172
	BasaltDeltas           Biome = 173
	DripstoneCaves         Biome = 174
	LushCaves              Biome = 175
	Meadow                 Biome = 177
	Grove                  Biome = 178
	SnowySlopes            Biome = 179
	JaggedPeaks            Biome = 180
	FrozenPeaks            Biome = 181
	StonyPeaks             Biome = 182
	DeepDark               Biome = 183
	MangroveSwamp          Biome = 184
	CherryGrove            Biome = 185
	PaleGarden             Biome = 186
)

// IsOceanic reports whether the biome is an ocean variant.
func IsOceanic(b Biome) bool {
	switch b {
	case Ocean, DeepOcean, FrozenOcean, DeepFrozenOcean,
		ColdOcean, DeepColdOcean, LukewarmOcean, DeepLukewarmOcean,
		WarmOcean, DeepWarmOcean:
		return true
	}
	return false
}

// IsSnowy reports whether the biome has permanent snow cover.
func IsSnowy(b Biome) bool {
	switch b {
	case SnowyPlains, IceSpikes, SnowyBeach, SnowyTaiga, FrozenRiver,
		FrozenOcean, DeepFrozenOcean, Grove, SnowySlopes, FrozenPeaks,
		JaggedPeaks:
		return true
	}
	return false
}
