// Package biome provides static rendering and physical metadata for biome
// identifiers: map colors, approximate surface heights, vegetation density,
// and grass tint. Every lookup is total; identifiers outside the tables
// resolve to a documented default, never an error.
package biome

import "github.com/OCharnyshevich/biome-atlas/pkg/cubegen"

// TreeDensity classifies vegetation cover.
type TreeDensity int

const (
	TreesNone   TreeDensity = 0
	TreesDense  TreeDensity = 1
	TreesSparse TreeDensity = 2
)

// Defaults returned for identifiers outside the tables.
const (
	DefaultColor      uint32 = 0x808080 // neutral gray
	DefaultBaseHeight int    = 64       // near sea level
	DefaultGrassColor uint32 = 0x8DB360 // standard grass green
)

// colors holds the cartography-style map color per biome, 0xRRGGBB.
var colors = map[cubegen.Biome]uint32{
	cubegen.Ocean:             0x000070,
	cubegen.DeepOcean:         0x000030,
	cubegen.FrozenOcean:       0x7070D6,
	cubegen.DeepFrozenOcean:   0x404090,
	cubegen.ColdOcean:         0x202070,
	cubegen.DeepColdOcean:     0x202050,
	cubegen.LukewarmOcean:     0x0000AC,
	cubegen.DeepLukewarmOcean: 0x000080,
	cubegen.WarmOcean:         0x0000FF,

	cubegen.Plains:          0x8DB360,
	cubegen.SunflowerPlains: 0xB5DB88,
	cubegen.Forest:          0x056621,
	cubegen.FlowerForest:    0x2D8E49,
	cubegen.BirchForest:     0x307444,
	cubegen.DarkForest:      0x40511A,
	cubegen.Taiga:           0x0B6659,
	cubegen.SnowyTaiga:      0x31554A,
	cubegen.Jungle:          0x537B09,
	cubegen.BambooJungle:    0x768E14,
	cubegen.SparseJungle:    0x628B17,
	cubegen.Swamp:           0x07F9B2,
	cubegen.MangroveSwamp:   0x67352B,

	cubegen.Desert:         0xFA9418,
	cubegen.Savanna:        0xBDB25F,
	cubegen.SavannaPlateau: 0xA79D64,
	cubegen.Badlands:       0xD94515,
	cubegen.WoodedBadlands: 0xB09765,
	cubegen.ErodedBadlands: 0xFF6D3D,

	cubegen.SnowyPlains: 0xFFFFFF,
	cubegen.IceSpikes:   0xB4DCDC,
	cubegen.SnowyBeach:  0xFAF0C0,
	cubegen.FrozenRiver: 0xA0A0FF,
	cubegen.SnowySlopes: 0xA8A8A8,
	cubegen.FrozenPeaks: 0xA0A0FF,
	cubegen.JaggedPeaks: 0xC0C0C0,
	cubegen.StonyPeaks:  0x888888,
	cubegen.Grove:       0x4E8A4E,

	cubegen.Beach:      0xFADE55,
	cubegen.StonyShore: 0xA2A284,

	cubegen.River: 0x0000FF,

	cubegen.WindsweptHills:         0x606060,
	cubegen.WindsweptForest:        0x507050,
	cubegen.WindsweptGravellyHills: 0x888888,
	cubegen.Meadow:                 0x58B858,

	cubegen.MushroomFields: 0xFF00FF,
	cubegen.CherryGrove:    0xFFB7C5,

	// Cave biomes never show on surface slices but render in cross-sections.
	cubegen.DripstoneCaves: 0x866043,
	cubegen.LushCaves:      0x7BA331,
	cubegen.DeepDark:       0x0F252F,

	cubegen.PaleGarden: 0xD5CEC7,
}

// baseHeights approximates the surface elevation per biome, in [0, 255].
var baseHeights = map[cubegen.Biome]int{
	cubegen.Ocean:             45,
	cubegen.DeepOcean:         30,
	cubegen.FrozenOcean:       45,
	cubegen.DeepFrozenOcean:   30,
	cubegen.ColdOcean:         45,
	cubegen.DeepColdOcean:     30,
	cubegen.LukewarmOcean:     45,
	cubegen.DeepLukewarmOcean: 30,
	cubegen.WarmOcean:         48,

	cubegen.Beach:      63,
	cubegen.SnowyBeach: 63,
	cubegen.StonyShore: 64,

	cubegen.River:       56,
	cubegen.FrozenRiver: 56,

	cubegen.Plains:          68,
	cubegen.SunflowerPlains: 68,
	cubegen.Meadow:          72,

	cubegen.Forest:       70,
	cubegen.FlowerForest: 70,
	cubegen.BirchForest:  68,
	cubegen.DarkForest:   68,
	cubegen.CherryGrove:  70,
	cubegen.PaleGarden:   68,

	cubegen.Taiga:      68,
	cubegen.SnowyTaiga: 68,
	cubegen.Grove:      75,

	cubegen.Jungle:       72,
	cubegen.BambooJungle: 70,
	cubegen.SparseJungle: 70,

	cubegen.Swamp:         62,
	cubegen.MangroveSwamp: 61,

	cubegen.Desert:         68,
	cubegen.Badlands:       80,
	cubegen.WoodedBadlands: 82,
	cubegen.ErodedBadlands: 75,

	cubegen.Savanna:        70,
	cubegen.SavannaPlateau: 85,

	cubegen.SnowyPlains: 68,
	cubegen.IceSpikes:   68,
	cubegen.SnowySlopes: 90,
	cubegen.FrozenPeaks: 110,

	cubegen.WindsweptHills:         90,
	cubegen.WindsweptForest:        85,
	cubegen.WindsweptGravellyHills: 88,
	cubegen.JaggedPeaks:            120,
	cubegen.StonyPeaks:             115,

	cubegen.MushroomFields: 66,
}

// treeDensity lists biomes with tree cover; everything else is treeless.
var treeDensity = map[cubegen.Biome]TreeDensity{
	cubegen.Forest:          TreesDense,
	cubegen.FlowerForest:    TreesDense,
	cubegen.BirchForest:     TreesDense,
	cubegen.DarkForest:      TreesDense,
	cubegen.Taiga:           TreesDense,
	cubegen.SnowyTaiga:      TreesDense,
	cubegen.Jungle:          TreesDense,
	cubegen.BambooJungle:    TreesDense,
	cubegen.SparseJungle:    TreesDense,
	cubegen.Swamp:           TreesDense,
	cubegen.MangroveSwamp:   TreesDense,
	cubegen.Grove:           TreesDense,
	cubegen.WindsweptForest: TreesDense,
	cubegen.CherryGrove:     TreesDense,
	cubegen.PaleGarden:      TreesDense,
	cubegen.WoodedBadlands:  TreesDense,

	cubegen.Plains:  TreesSparse,
	cubegen.Meadow:  TreesSparse,
	cubegen.Savanna: TreesSparse,
}

// grassColors overrides the standard grass tint for biomes with
// non-standard grass coloration.
var grassColors = map[cubegen.Biome]uint32{
	cubegen.Swamp:          0x6A7039,
	cubegen.MangroveSwamp:  0x8DB127,
	cubegen.Jungle:         0x59C93C,
	cubegen.BambooJungle:   0x59C93C,
	cubegen.SparseJungle:   0x59C93C,
	cubegen.Badlands:       0x90814D,
	cubegen.WoodedBadlands: 0x90814D,
	cubegen.ErodedBadlands: 0x90814D,
	cubegen.DarkForest:     0x507A32,
}

// Color returns the map color for b, or DefaultColor for unknown ids.
func Color(b cubegen.Biome) uint32 {
	if c, ok := colors[b]; ok {
		return c
	}
	return DefaultColor
}

// BaseHeight returns the approximate surface height for b in [0, 255],
// or DefaultBaseHeight for unknown ids.
func BaseHeight(b cubegen.Biome) int {
	if h, ok := baseHeights[b]; ok {
		return h
	}
	return DefaultBaseHeight
}

// Trees returns the vegetation density classification for b.
func Trees(b cubegen.Biome) TreeDensity {
	return treeDensity[b]
}

// GrassColor returns the grass tint for b, or DefaultGrassColor when the
// biome uses the standard coloration.
func GrassColor(b cubegen.Biome) uint32 {
	if c, ok := grassColors[b]; ok {
		return c
	}
	return DefaultGrassColor
}

// IsOceanic forwards to the generator library's classification.
func IsOceanic(b cubegen.Biome) bool { return cubegen.IsOceanic(b) }

// IsSnowy forwards to the generator library's classification.
func IsSnowy(b cubegen.Biome) bool { return cubegen.IsSnowy(b) }
