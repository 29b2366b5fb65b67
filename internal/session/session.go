// Package session wraps the biome generator in a stateful, lockable
// session and manages the flat buffers that cross the host boundary.
package session

import (
	"errors"
	"sync"

	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
)

// Boundary status codes for area queries. Zero is success; the negative
// values match the sentinel the original call surface used, so hosts
// checking for non-zero keep working.
const (
	StatusOK          = 0
	StatusNotReady    = -1 // session unconfigured or buffer absent
	StatusShortBuffer = -2 // buffer capacity below sx*sz
)

// ErrNotConfigured is returned when a seed is applied before Init.
var ErrNotConfigured = errors.New("session: generator not configured")

// Session holds one configured generator and serializes all access to it,
// so a session may be shared across goroutines. The zero state is
// unconfigured: point queries return cubegen.BiomeNone and area queries
// StatusNotReady until Init is called.
type Session struct {
	mu         sync.Mutex
	gen        cubegen.Generator
	configured bool
}

// New returns an unconfigured session.
func New() *Session {
	return &Session{}
}

// Init (re)configures the session for a game version and generation
// flags. It always succeeds, discarding any previously applied seed.
func (s *Session) Init(version cubegen.Version, flags uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.Setup(version, flags)
	s.configured = true
}

// Configured reports whether Init has been called.
func (s *Session) Configured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.configured
}

// ApplySeed combines the two 32-bit halves into the 64-bit world seed
// (hi<<32 | lo) and binds the session to it for the given dimension.
// Applying a seed to an unconfigured session is a caller error.
func (s *Session) ApplySeed(hi, lo uint32, dim cubegen.Dimension) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.configured {
		return ErrNotConfigured
	}
	s.gen.ApplySeed(dim, uint64(hi)<<32|uint64(lo))
	return nil
}

// BiomeAt returns the biome at (x, z) in units of scale blocks at
// vertical block coordinate y, or cubegen.BiomeNone if the session is
// unconfigured. A configured but unseeded session evaluates against the
// zero seed.
func (s *Session) BiomeAt(scale, x, y, z int) cubegen.Biome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.configured {
		return cubegen.BiomeNone
	}
	return s.gen.BiomeAt(scale, x, y, z)
}

// GenBiomes2D fills buf with the sx*sz biomes of the horizontal slice at
// block height y starting at (x, z) in scaled units, row-major. It
// returns StatusNotReady for an unconfigured session or nil buffer,
// StatusShortBuffer when the buffer holds fewer than sx*sz samples, and
// otherwise the generator's own status (0 on success).
func (s *Session) GenBiomes2D(buf *Buffer, scale, x, z, sx, sz, y int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.configured || buf == nil {
		return StatusNotReady
	}
	if sx > 0 && sz > 0 && len(buf.Data) < sx*sz {
		return StatusShortBuffer
	}
	return s.gen.GenBiomes(buf.Data, cubegen.Range{
		Scale: scale,
		X:     x,
		Z:     z,
		Sx:    sx,
		Sz:    sz,
		Y:     y,
	})
}
