package cubegen

// Version identifies the game release whose biome layout the generator
// reproduces. Values are internal to this library; hosts obtain them
// through the boundary version resolver.
type Version int

const (
	VersionUndef Version = iota
	Version1_12
	Version1_13
	Version1_14
	Version1_15
	Version1_16
	Version1_17
	Version1_18
	Version1_19
	Version1_20
	Version1_21

	VersionNewest = Version1_21
)

// String returns the release name, e.g. "1.18".
func (v Version) String() string {
	switch v {
	case Version1_12:
		return "1.12"
	case Version1_13:
		return "1.13"
	case Version1_14:
		return "1.14"
	case Version1_15:
		return "1.15"
	case Version1_16:
		return "1.16"
	case Version1_17:
		return "1.17"
	case Version1_18:
		return "1.18"
	case Version1_19:
		return "1.19"
	case Version1_20:
		return "1.20"
	case Version1_21:
		return "1.21"
	default:
		return "undefined"
	}
}

// Dimension selects one of the parallel world layers. Values match the
// game's dimension ids and are forwarded as-is by the boundary layer.
type Dimension int

const (
	Nether    Dimension = -1
	Overworld Dimension = 0
	End       Dimension = 1
)

// Generator flags.
const (
	// FlagLargeBiomes quarters the climate field frequency, producing
	// biome regions roughly four times larger in each direction.
	FlagLargeBiomes uint32 = 1 << 0
)
