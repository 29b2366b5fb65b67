package session

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
)

func TestQueryBeforeInitReturnsSentinel(t *testing.T) {
	s := New()

	if b := s.BiomeAt(1, 0, 63, 0); b != cubegen.BiomeNone {
		t.Errorf("BiomeAt before Init = %d, want %d", b, cubegen.BiomeNone)
	}
	if b := s.BiomeAt(256, -999, 0, 424242); b != cubegen.BiomeNone {
		t.Errorf("BiomeAt before Init = %d, want %d", b, cubegen.BiomeNone)
	}

	buf, err := AllocBiomeBuffer(4, 4)
	if err != nil {
		t.Fatalf("AllocBiomeBuffer: %v", err)
	}
	defer FreeBuffer(buf)

	if status := s.GenBiomes2D(buf, 1, 0, 0, 4, 4, 63); status != StatusNotReady {
		t.Errorf("GenBiomes2D before Init = %d, want %d", status, StatusNotReady)
	}
}

func TestApplySeedBeforeInitRejected(t *testing.T) {
	s := New()
	if err := s.ApplySeed(0, 1, cubegen.Overworld); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("ApplySeed before Init = %v, want ErrNotConfigured", err)
	}
}

func TestSeedCombinesHalves(t *testing.T) {
	hiLo := New()
	hiLo.Init(cubegen.Version1_18, 0)
	if err := hiLo.ApplySeed(0xABCD, 0x1234, cubegen.Overworld); err != nil {
		t.Fatalf("ApplySeed: %v", err)
	}

	// A generator seeded directly with the combined value must agree.
	g := cubegen.NewGenerator(cubegen.Version1_18, 0)
	g.ApplySeed(cubegen.Overworld, 0xABCD<<32|0x1234)

	for i := 0; i < 50; i++ {
		x, z := i*131, i*-77
		if hiLo.BiomeAt(1, x, 63, z) != g.BiomeAt(1, x, 63, z) {
			t.Fatalf("split-seed session differs from combined seed at (%d, %d)", x, z)
		}
	}
}

func TestPointQueriesDeterministic(t *testing.T) {
	s := New()
	s.Init(cubegen.Version1_18, 0)
	if err := s.ApplySeed(0, 12345, cubegen.Overworld); err != nil {
		t.Fatalf("ApplySeed: %v", err)
	}

	a := s.BiomeAt(1, 0, 63, 0)
	b := s.BiomeAt(1, 0, 63, 0)
	if a != b {
		t.Fatalf("repeated query returned %d then %d", a, b)
	}
	if a == cubegen.BiomeNone {
		t.Fatal("seeded query returned the unconfigured sentinel")
	}
}

func TestGenBiomes2DMatchesPointQueries(t *testing.T) {
	s := New()
	s.Init(cubegen.Version1_16, 0)
	if err := s.ApplySeed(7, 99, cubegen.Overworld); err != nil {
		t.Fatalf("ApplySeed: %v", err)
	}

	const scale, sx, sz = 4, 8, 6
	buf, err := AllocBiomeBuffer(sx, sz)
	if err != nil {
		t.Fatalf("AllocBiomeBuffer: %v", err)
	}
	defer FreeBuffer(buf)

	if status := s.GenBiomes2D(buf, scale, -3, 11, sx, sz, 63); status != StatusOK {
		t.Fatalf("GenBiomes2D: status %d", status)
	}
	for j := 0; j < sz; j++ {
		for i := 0; i < sx; i++ {
			want := s.BiomeAt(scale, -3+i, 63, 11+j)
			if got := buf.At(i, j); got != want {
				t.Fatalf("cell (%d,%d): area %d, point %d", i, j, got, want)
			}
		}
	}
}

func TestGenBiomes2DNilBuffer(t *testing.T) {
	s := New()
	s.Init(cubegen.Version1_18, 0)
	if status := s.GenBiomes2D(nil, 1, 0, 0, 4, 4, 63); status != StatusNotReady {
		t.Errorf("GenBiomes2D(nil) = %d, want %d", status, StatusNotReady)
	}
}

func TestGenBiomes2DShortBuffer(t *testing.T) {
	s := New()
	s.Init(cubegen.Version1_18, 0)

	buf, err := AllocBiomeBuffer(4, 4)
	if err != nil {
		t.Fatalf("AllocBiomeBuffer: %v", err)
	}
	defer FreeBuffer(buf)

	if status := s.GenBiomes2D(buf, 1, 0, 0, 5, 5, 63); status != StatusShortBuffer {
		t.Errorf("undersized buffer status = %d, want %d", status, StatusShortBuffer)
	}
}

func TestReInitResetsSeed(t *testing.T) {
	s := New()
	s.Init(cubegen.Version1_18, 0)
	if err := s.ApplySeed(0, 555, cubegen.Overworld); err != nil {
		t.Fatalf("ApplySeed: %v", err)
	}
	// Re-init returns to the zero seed.
	s.Init(cubegen.Version1_18, 0)
	fresh := cubegen.NewGenerator(cubegen.Version1_18, 0)
	if got, want := s.BiomeAt(1, 4096, 63, 4096), fresh.BiomeAt(1, 4096, 63, 4096); got != want {
		t.Errorf("after re-init BiomeAt = %d, want zero-seed %d", got, want)
	}
}

func TestAllocZeroSized(t *testing.T) {
	buf, err := AllocBiomeBuffer(0, 0)
	if err != nil {
		t.Fatalf("AllocBiomeBuffer(0,0): %v", err)
	}
	if len(buf.Data) != 0 {
		t.Errorf("zero-sized buffer has %d samples", len(buf.Data))
	}
	if err := FreeBuffer(buf); err != nil {
		t.Errorf("FreeBuffer: %v", err)
	}
}

func TestFreeNilBuffer(t *testing.T) {
	if err := FreeBuffer(nil); err != nil {
		t.Errorf("FreeBuffer(nil) = %v, want nil", err)
	}
}

func TestDoubleFreeDetected(t *testing.T) {
	buf, err := AllocBiomeBuffer(2, 2)
	if err != nil {
		t.Fatalf("AllocBiomeBuffer: %v", err)
	}
	if err := FreeBuffer(buf); err != nil {
		t.Fatalf("first FreeBuffer: %v", err)
	}
	if err := FreeBuffer(buf); !errors.Is(err, ErrBufferNotOwned) {
		t.Errorf("second FreeBuffer = %v, want ErrBufferNotOwned", err)
	}
}

func TestForeignFreeDetected(t *testing.T) {
	foreign := &Buffer{Data: make([]int32, 4), Sx: 2, Sz: 2}
	if err := FreeBuffer(foreign); !errors.Is(err, ErrBufferNotOwned) {
		t.Errorf("FreeBuffer(foreign) = %v, want ErrBufferNotOwned", err)
	}
}

func TestAllocRejectsOversized(t *testing.T) {
	if _, err := AllocBiomeBuffer(1<<20, 1<<20); !errors.Is(err, ErrBufferTooLarge) {
		t.Errorf("oversized alloc error = %v, want ErrBufferTooLarge", err)
	}
	if _, err := AllocBiomeBuffer(-1, 4); err == nil {
		t.Error("negative alloc succeeded, want error")
	}
}
