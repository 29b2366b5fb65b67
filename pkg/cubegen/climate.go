package cubegen

import "github.com/aquilax/go-perlin"

// Climate field wavelengths in blocks. The biome of a column is a pure
// function of these five fields sampled at its (x, z) position.
const (
	tempWavelength  = 1024.0
	humidWavelength = 768.0
	contWavelength  = 512.0
	eroWavelength   = 256.0
	ridgeWavelength = 128.0
)

// dimension salts keep the per-dimension noise streams independent even
// though they share one world seed.
const (
	saltOverworld uint64 = 0x57E66DA5A9C05D71
	saltNether    uint64 = 0x8C71E1B6B0B8E2D3
	saltEnd       uint64 = 0x3F8A4C96D2E51B07
)

// climate bundles the seeded noise fields of one (seed, dimension) pair.
type climate struct {
	temp  *perlin.Perlin
	humid *perlin.Perlin
	cont  *simplexNoise
	ero   *simplexNoise
	ridge *simplexNoise

	// scale divides all wavelengths; >1 stretches biome regions.
	scale float64
}

// climatePoint holds the five field samples for one column, each in [-1, 1].
type climatePoint struct {
	temp  float64
	humid float64
	cont  float64
	ero   float64
	ridge float64
}

func dimensionSalt(dim Dimension) uint64 {
	switch dim {
	case Nether:
		return saltNether
	case End:
		return saltEnd
	default:
		return saltOverworld
	}
}

// newClimate derives independent sub-seeds for each field from the world
// seed and builds the noise sources.
func newClimate(seed uint64, dim Dimension, largeBiomes bool) *climate {
	s := splitmix64(seed ^ dimensionSalt(dim))
	next := func() uint64 {
		s = splitmix64(s)
		return s
	}

	c := &climate{
		temp:  perlin.NewPerlin(2, 2, 3, int64(next())),
		humid: perlin.NewPerlin(2, 2, 3, int64(next())),
		cont:  newSimplexNoise(next()),
		ero:   newSimplexNoise(next()),
		ridge: newSimplexNoise(next()),
		scale: 1,
	}
	if largeBiomes {
		c.scale = 4
	}
	return c
}

// at samples all five fields at a block position. The half-block offset
// keeps the gradient lattice away from integer sample points.
func (c *climate) at(bx, bz int) climatePoint {
	fx := (float64(bx) + 0.5) / c.scale
	fz := (float64(bz) + 0.5) / c.scale

	return climatePoint{
		temp:  clamp1(c.temp.Noise2D(fx/tempWavelength, fz/tempWavelength) * 1.5),
		humid: clamp1(c.humid.Noise2D(fx/humidWavelength, fz/humidWavelength) * 1.5),
		cont:  c.cont.fractal(fx/contWavelength, fz/contWavelength, 4),
		ero:   c.ero.fractal(fx/eroWavelength, fz/eroWavelength, 3),
		ridge: c.ridge.sample(fx/ridgeWavelength, fz/ridgeWavelength),
	}
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
