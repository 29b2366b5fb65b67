package boundary

import (
	"testing"

	"github.com/OCharnyshevich/biome-atlas/internal/session"
	"github.com/OCharnyshevich/biome-atlas/pkg/biome"
	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
)

// TestSurfaceLifecycle drives the process-wide session through its whole
// state machine in order, since the surface is deliberately a singleton.
func TestSurfaceLifecycle(t *testing.T) {
	// Unconfigured: point queries return the -1 sentinel for any input.
	if b := GetBiomeAt(1, 0, 63, 0); b != cubegen.BiomeNone {
		t.Fatalf("GetBiomeAt before init = %d, want -1", b)
	}
	if b := GetBiomeAt(64, -100000, 0, 7); b != cubegen.BiomeNone {
		t.Fatalf("GetBiomeAt before init = %d, want -1", b)
	}
	if err := ApplySeed(0, 1, cubegen.Overworld); err == nil {
		t.Fatal("ApplySeed before init succeeded, want error")
	}

	buf, err := AllocBiomeBuffer(8, 8)
	if err != nil {
		t.Fatalf("AllocBiomeBuffer: %v", err)
	}
	if status := GenBiomes2D(buf, 1, 0, 0, 8, 8, 63); status == 0 {
		t.Fatal("GenBiomes2D before init returned 0, want non-zero")
	}

	// Configure and seed: the documented host scenario.
	InitGenerator(GetMCVersion(1, 18), 0)
	if err := ApplySeed(0, 12345, cubegen.Overworld); err != nil {
		t.Fatalf("ApplySeed: %v", err)
	}

	first := GetBiomeAt(1, 0, 63, 0)
	if first == cubegen.BiomeNone {
		t.Fatal("seeded GetBiomeAt returned -1")
	}
	if again := GetBiomeAt(1, 0, 63, 0); again != first {
		t.Fatalf("repeated query: %d then %d", first, again)
	}

	// Area query agrees with point queries cell by cell.
	if status := GenBiomes2D(buf, 4, -2, 3, 8, 8, 63); status != 0 {
		t.Fatalf("GenBiomes2D: status %d", status)
	}
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			want := GetBiomeAt(4, -2+i, 63, 3+j)
			if got := buf.At(i, j); got != want {
				t.Fatalf("cell (%d,%d): area %d, point %d", i, j, got, want)
			}
		}
	}

	if err := FreeBuffer(buf); err != nil {
		t.Fatalf("FreeBuffer: %v", err)
	}
	if err := FreeBuffer(nil); err != nil {
		t.Fatalf("FreeBuffer(nil): %v", err)
	}

	// Re-seeding with the same inputs reproduces the same biome.
	if err := ApplySeed(0, 12345, cubegen.Overworld); err != nil {
		t.Fatalf("re-ApplySeed: %v", err)
	}
	if b := GetBiomeAt(1, 0, 63, 0); b != first {
		t.Fatalf("same inputs gave %d, previously %d", b, first)
	}
}

func TestVersionResolver(t *testing.T) {
	if got := GetMCVersion(1, 18); got != cubegen.Version1_18 {
		t.Errorf("GetMCVersion(1,18) = %v", got)
	}
	if got := GetMCVersion(1, 99); got != cubegen.Version1_18 {
		t.Errorf("GetMCVersion(1,99) = %v, want 1.18 fallback", got)
	}
	if got := GetMCVersion(3, 14); got != cubegen.Version1_18 {
		t.Errorf("GetMCVersion(3,14) = %v, want 1.18 fallback", got)
	}
}

func TestMetadataLookups(t *testing.T) {
	if got := GetBiomeColor(cubegen.Plains); got != 0x8DB360 {
		t.Errorf("GetBiomeColor(plains) = %#06x", got)
	}
	if got := GetBiomeBaseHeight(cubegen.DeepOcean); got != 30 {
		t.Errorf("GetBiomeBaseHeight(deep ocean) = %d", got)
	}
	if got := BiomeHasTrees(cubegen.Savanna); got != biome.TreesSparse {
		t.Errorf("BiomeHasTrees(savanna) = %d", got)
	}
	if got := GetBiomeGrassColor(cubegen.Swamp); got != 0x6A7039 {
		t.Errorf("GetBiomeGrassColor(swamp) = %#06x", got)
	}

	// Unrecognized identifiers resolve to the documented defaults.
	if got := GetBiomeColor(9999); got != 0x808080 {
		t.Errorf("GetBiomeColor(9999) = %#06x, want 0x808080", got)
	}
	if got := GetBiomeBaseHeight(9999); got != 64 {
		t.Errorf("GetBiomeBaseHeight(9999) = %d, want 64", got)
	}
	if got := BiomeHasTrees(9999); got != biome.TreesNone {
		t.Errorf("BiomeHasTrees(9999) = %d, want 0", got)
	}

	if !IsOcean(cubegen.LukewarmOcean) || IsOcean(cubegen.Plains) {
		t.Error("IsOcean misclassified")
	}
	if !IsSnowyBiome(cubegen.SnowyPlains) || IsSnowyBiome(cubegen.Jungle) {
		t.Error("IsSnowyBiome misclassified")
	}
}

func TestBufferMisuseDetected(t *testing.T) {
	buf, err := AllocBiomeBuffer(0, 0)
	if err != nil {
		t.Fatalf("AllocBiomeBuffer(0,0): %v", err)
	}
	if err := FreeBuffer(buf); err != nil {
		t.Fatalf("FreeBuffer: %v", err)
	}
	if err := FreeBuffer(buf); err == nil {
		t.Error("double free not detected")
	}
	if err := FreeBuffer(&session.Buffer{}); err == nil {
		t.Error("foreign buffer free not detected")
	}
}
