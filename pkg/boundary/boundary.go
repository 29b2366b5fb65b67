// Package boundary exposes the biome engine through the narrow, flat call
// surface scripting and rendering hosts integrate against: one process-wide
// generator session, buffer alloc/free, and the static metadata lookups.
// Hosts needing independent generators should use internal/session
// Sessions directly; this surface exists for API compatibility.
package boundary

import (
	"github.com/OCharnyshevich/biome-atlas/internal/session"
	"github.com/OCharnyshevich/biome-atlas/pkg/biome"
	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
	"github.com/OCharnyshevich/biome-atlas/pkg/mc"
)

// defaultSession backs the process-wide surface. It is safe for
// concurrent use; calls are serialized by the session lock.
var defaultSession = session.New()

// InitGenerator (re)configures the process-wide generator for a version
// identifier and generation flags (cubegen.FlagLargeBiomes is bit 0).
// It always succeeds and discards any previously applied seed.
func InitGenerator(versionID cubegen.Version, flags uint32) {
	defaultSession.Init(versionID, flags)
}

// ApplySeed combines the seed halves (hi<<32 | lo) and seeds the
// generator for the given dimension. It returns
// session.ErrNotConfigured if InitGenerator has not been called.
func ApplySeed(seedHi, seedLo uint32, dim cubegen.Dimension) error {
	return defaultSession.ApplySeed(seedHi, seedLo, dim)
}

// GetBiomeAt returns the biome at (x, z) in units of scale blocks at
// block height y, or cubegen.BiomeNone (-1) when unconfigured.
func GetBiomeAt(scale, x, y, z int) cubegen.Biome {
	return defaultSession.BiomeAt(scale, x, y, z)
}

// GenBiomes2D fills buf with sx*sz biomes row-major for the horizontal
// slice at block height y, origin (x, z) in scaled units. Returns 0 on
// success and a non-zero status otherwise (see the session package).
func GenBiomes2D(buf *session.Buffer, scale, x, z, sx, sz, y int) int {
	return defaultSession.GenBiomes2D(buf, scale, x, z, sx, sz, y)
}

// AllocBiomeBuffer allocates a caller-owned buffer for sx*sz samples.
func AllocBiomeBuffer(sx, sz int) (*session.Buffer, error) {
	return session.AllocBiomeBuffer(sx, sz)
}

// FreeBuffer releases a buffer from AllocBiomeBuffer; nil is a no-op.
func FreeBuffer(buf *session.Buffer) error {
	return session.FreeBuffer(buf)
}

// GetMCVersion resolves a (major, minor) release pair to a generator
// version identifier, falling back to 1.18 for unknown releases.
func GetMCVersion(major, minor int) cubegen.Version {
	return mc.VersionOf(major, minor)
}

// IsOcean reports whether id is an ocean variant.
func IsOcean(id cubegen.Biome) bool { return cubegen.IsOceanic(id) }

// IsSnowyBiome reports whether id has permanent snow cover.
func IsSnowyBiome(id cubegen.Biome) bool { return cubegen.IsSnowy(id) }

// GetBiomeColor returns the 0xRRGGBB map color for id.
func GetBiomeColor(id cubegen.Biome) uint32 { return biome.Color(id) }

// GetBiomeBaseHeight returns the approximate surface height for id.
func GetBiomeBaseHeight(id cubegen.Biome) int { return biome.BaseHeight(id) }

// GetBiomeGrassColor returns the 0xRRGGBB grass tint for id.
func GetBiomeGrassColor(id cubegen.Biome) uint32 { return biome.GrassColor(id) }

// BiomeHasTrees returns the vegetation density classification for id
// (0 = none, 1 = dense, 2 = sparse).
func BiomeHasTrees(id cubegen.Biome) biome.TreeDensity { return biome.Trees(id) }
