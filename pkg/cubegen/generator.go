// Package cubegen implements a deterministic biome classification engine.
// A Generator is configured with a game version and flags, seeded for a
// dimension, and then answers pure point and area biome queries: the result
// is a function of (version, flags, seed, dimension, position) only.
package cubegen

import "math"

// Generator holds the configured and seeded state of one biome engine
// instance. It is not safe for concurrent use; callers that share a
// Generator across goroutines must serialize access.
type Generator struct {
	version Version
	flags   uint32
	dim     Dimension
	seed    uint64
	climate *climate
}

// NewGenerator returns a Generator set up for the given version and flags,
// evaluating against the zero seed until ApplySeed is called.
func NewGenerator(version Version, flags uint32) *Generator {
	g := &Generator{}
	g.Setup(version, flags)
	return g
}

// Setup (re)configures the generator and resets it to the overworld zero
// seed. Calling Setup on a seeded generator discards the seed.
func (g *Generator) Setup(version Version, flags uint32) {
	g.version = version
	g.flags = flags
	g.dim = Overworld
	g.seed = 0
	g.climate = newClimate(0, Overworld, flags&FlagLargeBiomes != 0)
}

// ApplySeed binds the generator to a world seed and dimension.
func (g *Generator) ApplySeed(dim Dimension, seed uint64) {
	g.dim = dim
	g.seed = seed
	g.climate = newClimate(seed, dim, g.flags&FlagLargeBiomes != 0)
}

// Version returns the configured game version.
func (g *Generator) Version() Version { return g.version }

// Flags returns the configured generation flags.
func (g *Generator) Flags() uint32 { return g.flags }

// Seed returns the applied world seed (zero until ApplySeed).
func (g *Generator) Seed() uint64 { return g.seed }

// Dim returns the seeded dimension.
func (g *Generator) Dim() Dimension { return g.dim }

// Range describes a rectangular horizontal slice of Sx*Sz samples.
// X and Z are the origin in units of Scale blocks; Y is the vertical
// block coordinate of the slice (63 samples the sea-level surface).
type Range struct {
	Scale int
	X, Z  int
	Sx    int
	Sz    int
	Y     int
}

// Cells returns the number of samples the range covers.
func (r Range) Cells() int { return r.Sx * r.Sz }

// Valid reports whether the range describes a non-empty slice at a
// supported sampling scale.
func (r Range) Valid() bool {
	switch r.Scale {
	case 1, 4, 16, 64, 256:
	default:
		return false
	}
	return r.Sx > 0 && r.Sz > 0
}

// BiomeAt returns the biome at position (x, z) in units of scale blocks,
// at vertical block coordinate y. It returns BiomeNone if the generator
// has never been set up.
func (g *Generator) BiomeAt(scale, x, y, z int) Biome {
	if g.climate == nil {
		return BiomeNone
	}
	return g.biomeAt(x*scale, y, z*scale)
}

// GenBiomes fills buf with the biomes of r in row-major order, so that
// buf[j*r.Sx+i] is the sample at (r.X+i, r.Z+j) in scaled units. It
// returns 0 on success and 1 for an unconfigured generator, an invalid
// range, or a buffer shorter than r.Cells().
func (g *Generator) GenBiomes(buf []int32, r Range) int {
	if g.climate == nil || !r.Valid() || len(buf) < r.Cells() {
		return 1
	}
	for j := 0; j < r.Sz; j++ {
		for i := 0; i < r.Sx; i++ {
			b := g.biomeAt((r.X+i)*r.Scale, r.Y, (r.Z+j)*r.Scale)
			buf[j*r.Sx+i] = int32(b)
		}
	}
	return 0
}

func (g *Generator) atLeast(v Version) bool {
	return g.version >= v && g.version != VersionUndef
}

// biomeAt classifies a single block column position.
func (g *Generator) biomeAt(bx, by, bz int) Biome {
	p := g.climate.at(bx, bz)
	switch g.dim {
	case Nether:
		return g.netherBiome(p)
	case End:
		return g.endBiome(bx, bz, p)
	default:
		return g.overworldBiome(p, by)
	}
}

// overworldBiome resolves the climate point to an overworld biome.
// Bands, from the ocean upward: deep ocean, ocean, shore, then inland
// biomes picked from the temperature/humidity matrix with erosion
// carving out mountain and river features.
func (g *Generator) overworldBiome(p climatePoint, by int) Biome {
	// Underground biomes exist from 1.18 on; above-surface queries
	// (the default y=63) never reach this branch at sea level.
	if g.atLeast(Version1_18) && by < 30 {
		return g.caveBiome(p, by)
	}

	if p.cont < -0.55 {
		return g.oceanBiome(p.temp, true)
	}
	if p.cont < -0.19 {
		// Rare far-shore island band.
		if p.cont < -0.46 && p.humid > 0.82 && p.temp > -0.1 && p.temp < 0.45 {
			return MushroomFields
		}
		return g.oceanBiome(p.temp, false)
	}
	if p.cont < -0.11 {
		return g.shoreBiome(p)
	}

	// Rivers cut through all inland terrain along ridge zero-crossings.
	if math.Abs(p.ridge) < 0.045 && p.ero < 0.4 {
		if p.temp < -0.45 {
			return FrozenRiver
		}
		return River
	}

	if p.ero > 0.55 {
		return g.peakBiome(p)
	}
	if p.ero > 0.38 {
		return g.slopeBiome(p)
	}

	// Swamps sit on flat low ground next to the shore band.
	if p.cont < -0.02 && p.ero < -0.2 && p.temp > -0.15 {
		if g.atLeast(Version1_19) && p.temp > 0.55 {
			return MangroveSwamp
		}
		return Swamp
	}

	return g.lowlandBiome(p)
}

// oceanBiome picks the ocean variant by temperature. The warm, lukewarm,
// and cold variants were introduced in 1.13; before that only the plain
// and frozen oceans exist.
func (g *Generator) oceanBiome(temp float64, deep bool) Biome {
	if !g.atLeast(Version1_13) {
		if temp < -0.45 {
			return FrozenOcean
		}
		if deep {
			return DeepOcean
		}
		return Ocean
	}
	switch {
	case temp < -0.45:
		if deep {
			return DeepFrozenOcean
		}
		return FrozenOcean
	case temp < -0.1:
		if deep {
			return DeepColdOcean
		}
		return ColdOcean
	case temp < 0.25:
		if deep {
			return DeepOcean
		}
		return Ocean
	case temp < 0.6:
		if deep {
			return DeepLukewarmOcean
		}
		return LukewarmOcean
	default:
		if deep {
			return DeepWarmOcean
		}
		return WarmOcean
	}
}

func (g *Generator) shoreBiome(p climatePoint) Biome {
	if p.temp < -0.45 {
		return SnowyBeach
	}
	if p.ero > 0.35 {
		return StonyShore
	}
	return Beach
}

// peakBiome handles the strongest erosion band. The dedicated peak biomes
// arrived with 1.18; older versions use the windswept hills family.
func (g *Generator) peakBiome(p climatePoint) Biome {
	if !g.atLeast(Version1_18) {
		switch {
		case p.humid > 0.3:
			return WindsweptForest
		case p.humid < -0.3:
			return WindsweptGravellyHills
		default:
			return WindsweptHills
		}
	}
	switch {
	case p.temp < -0.2:
		return FrozenPeaks
	case p.temp < 0.3:
		return JaggedPeaks
	default:
		return StonyPeaks
	}
}

// slopeBiome handles the moderate erosion band below the peaks.
func (g *Generator) slopeBiome(p climatePoint) Biome {
	if !g.atLeast(Version1_18) {
		if p.humid > 0.3 {
			return WindsweptForest
		}
		return WindsweptHills
	}
	switch {
	case p.temp < -0.3:
		return SnowySlopes
	case p.temp < 0.0:
		return Grove
	default:
		if g.atLeast(Version1_20) && p.ridge > 0.62 {
			return CherryGrove
		}
		return Meadow
	}
}

// lowlandBiome is the flat-terrain temperature/humidity matrix:
//
//	Temp\Humid  | Dry            | Medium         | Wet
//	Frozen      | Ice Spikes*    | Snowy Plains   | Snowy Taiga
//	Cold        | Plains         | Taiga          | Old Growth Pine Taiga
//	Temperate   | Plains         | Forest         | Birch / Dark Forest
//	Warm        | Savanna        | Plains         | Sparse Jungle
//	Hot         | Desert         | Savanna        | Jungle / Badlands
//
// (* only at the driest extreme; ridge noise picks the rarer variants.)
func (g *Generator) lowlandBiome(p climatePoint) Biome {
	switch {
	case p.temp < -0.45:
		switch {
		case p.humid < -0.6:
			return IceSpikes
		case p.humid < 0.1:
			return SnowyPlains
		default:
			return SnowyTaiga
		}
	case p.temp < -0.15:
		switch {
		case p.humid < -0.3:
			return Plains
		case p.humid < 0.3:
			return Taiga
		default:
			return OldGrowthPineTaiga
		}
	case p.temp < 0.2:
		switch {
		case p.humid < -0.35:
			if p.ridge > 0.55 {
				return SunflowerPlains
			}
			return Plains
		case p.humid < 0.05:
			if p.ridge > 0.55 {
				return FlowerForest
			}
			return Forest
		case p.humid < 0.4:
			if p.ridge > 0.6 {
				return OldGrowthBirchForest
			}
			return BirchForest
		default:
			if g.atLeast(Version1_21) && p.ridge > 0.55 {
				return PaleGarden
			}
			return DarkForest
		}
	case p.temp < 0.55:
		switch {
		case p.humid < -0.35:
			if p.ero > 0.2 {
				return SavannaPlateau
			}
			return Savanna
		case p.humid < 0.2:
			return Plains
		default:
			return SparseJungle
		}
	default:
		switch {
		case p.humid < -0.35:
			return g.badlandsBiome(p)
		case p.humid < 0.0:
			return Desert
		case p.humid < 0.35:
			return Savanna
		default:
			if g.atLeast(Version1_14) && p.ridge > 0.5 {
				return BambooJungle
			}
			return Jungle
		}
	}
}

func (g *Generator) badlandsBiome(p climatePoint) Biome {
	if p.ero < -0.35 {
		return Desert
	}
	switch {
	case p.ridge < -0.4:
		return ErodedBadlands
	case p.ridge > 0.4:
		return WoodedBadlands
	default:
		return Badlands
	}
}

// caveBiome picks underground biomes for sub-surface queries (1.18+).
func (g *Generator) caveBiome(p climatePoint, by int) Biome {
	if g.atLeast(Version1_19) && by < 0 && p.ero < -0.4 {
		return DeepDark
	}
	if p.humid > 0.25 {
		return LushCaves
	}
	return DripstoneCaves
}

// netherBiome resolves nether columns. Before 1.16 the whole dimension is
// nether wastes.
func (g *Generator) netherBiome(p climatePoint) Biome {
	if !g.atLeast(Version1_16) {
		return NetherWastes
	}
	switch {
	case p.temp < -0.4:
		return SoulSandValley
	case p.ero > 0.45:
		return BasaltDeltas
	case p.humid > 0.35:
		return CrimsonForest
	case p.humid < -0.35:
		return WarpedForest
	default:
		return NetherWastes
	}
}

// endBiome resolves end columns: the central island, then rings of
// highlands, midlands, and barrens out to the small islands.
func (g *Generator) endBiome(bx, bz int, p climatePoint) Biome {
	d := math.Sqrt(float64(bx)*float64(bx) + float64(bz)*float64(bz))
	if d < 1024 {
		return TheEnd
	}
	switch {
	case p.cont > 0.25:
		return EndHighlands
	case p.cont > -0.1:
		return EndMidlands
	case p.cont > -0.4:
		return EndBarrens
	default:
		return SmallEndIslands
	}
}
