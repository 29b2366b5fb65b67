package cubegen

import "testing"

func TestGeneratorDeterministic(t *testing.T) {
	g1 := NewGenerator(Version1_18, 0)
	g1.ApplySeed(Overworld, 12345)
	g2 := NewGenerator(Version1_18, 0)
	g2.ApplySeed(Overworld, 12345)

	for i := -50; i < 50; i++ {
		x, z := i*97, i*31
		if g1.BiomeAt(1, x, 63, z) != g2.BiomeAt(1, x, 63, z) {
			t.Fatalf("BiomeAt(1, %d, 63, %d) differs between identical generators", x, z)
		}
	}
}

func TestGeneratorRepeatedQueryIdentical(t *testing.T) {
	g := NewGenerator(Version1_20, 0)
	g.ApplySeed(Overworld, 0xDEADBEEF)

	a := g.BiomeAt(4, 10, 63, -20)
	b := g.BiomeAt(4, 10, 63, -20)
	if a != b {
		t.Fatalf("repeated query returned %d then %d", a, b)
	}
}

func TestUnseededMatchesZeroSeed(t *testing.T) {
	g1 := NewGenerator(Version1_18, 0)
	g2 := NewGenerator(Version1_18, 0)
	g2.ApplySeed(Overworld, 0)

	for i := 0; i < 50; i++ {
		x, z := i*53, i*71
		if g1.BiomeAt(1, x, 63, z) != g2.BiomeAt(1, x, 63, z) {
			t.Fatalf("fresh generator differs from explicit zero seed at (%d, %d)", x, z)
		}
	}
}

func TestGenBiomesMatchesPointQueries(t *testing.T) {
	for _, scale := range []int{1, 4, 16, 64, 256} {
		g := NewGenerator(Version1_18, 0)
		g.ApplySeed(Overworld, 998877)

		r := Range{Scale: scale, X: -8, Z: 5, Sx: 12, Sz: 9, Y: 63}
		buf := make([]int32, r.Cells())
		if status := g.GenBiomes(buf, r); status != 0 {
			t.Fatalf("GenBiomes at scale %d: status %d", scale, status)
		}

		for j := 0; j < r.Sz; j++ {
			for i := 0; i < r.Sx; i++ {
				want := g.BiomeAt(scale, r.X+i, r.Y, r.Z+j)
				got := Biome(buf[j*r.Sx+i])
				if got != want {
					t.Fatalf("scale %d cell (%d,%d): area %d, point %d", scale, i, j, got, want)
				}
			}
		}
	}
}

func TestGenBiomesRejectsBadInput(t *testing.T) {
	g := NewGenerator(Version1_18, 0)
	g.ApplySeed(Overworld, 1)

	buf := make([]int32, 16)
	cases := []Range{
		{Scale: 3, X: 0, Z: 0, Sx: 4, Sz: 4, Y: 63},  // unsupported scale
		{Scale: 4, X: 0, Z: 0, Sx: 0, Sz: 4, Y: 63},  // empty
		{Scale: 4, X: 0, Z: 0, Sx: -1, Sz: 4, Y: 63}, // negative
		{Scale: 4, X: 0, Z: 0, Sx: 5, Sz: 4, Y: 63},  // buffer too short
	}
	for _, r := range cases {
		if status := g.GenBiomes(buf, r); status == 0 {
			t.Errorf("GenBiomes(%+v) = 0, want non-zero", r)
		}
	}
}

func TestDifferentSeedsDifferentBiomes(t *testing.T) {
	g1 := NewGenerator(Version1_18, 0)
	g1.ApplySeed(Overworld, 1)
	g2 := NewGenerator(Version1_18, 0)
	g2.ApplySeed(Overworld, 2)

	different := false
	for i := 0; i < 200 && !different; i++ {
		x, z := i*257, i*139
		if g1.BiomeAt(1, x, 63, z) != g2.BiomeAt(1, x, 63, z) {
			different = true
		}
	}
	if !different {
		t.Fatal("seeds 1 and 2 produced identical biome layouts")
	}
}

func TestLargeBiomesChangesLayout(t *testing.T) {
	g1 := NewGenerator(Version1_18, 0)
	g1.ApplySeed(Overworld, 42)
	g2 := NewGenerator(Version1_18, FlagLargeBiomes)
	g2.ApplySeed(Overworld, 42)

	different := false
	for i := 0; i < 200 && !different; i++ {
		x, z := i*311, i*173
		if g1.BiomeAt(1, x, 63, z) != g2.BiomeAt(1, x, 63, z) {
			different = true
		}
	}
	if !different {
		t.Fatal("large biomes flag had no effect")
	}
}

func TestNetherBiomesPerVersion(t *testing.T) {
	old := NewGenerator(Version1_15, 0)
	old.ApplySeed(Nether, 77)
	for i := 0; i < 100; i++ {
		if b := old.BiomeAt(1, i*513, 63, i*-201); b != NetherWastes {
			t.Fatalf("1.15 nether returned %d, want only nether wastes", b)
		}
	}

	cur := NewGenerator(Version1_16, 0)
	cur.ApplySeed(Nether, 77)
	seen := map[Biome]bool{}
	for i := -200; i < 200; i++ {
		seen[cur.BiomeAt(1, i*513, 63, i*-201)] = true
	}
	if len(seen) < 2 {
		t.Fatalf("1.16 nether produced only %v, want several variants", seen)
	}
	for b := range seen {
		switch b {
		case NetherWastes, SoulSandValley, CrimsonForest, WarpedForest, BasaltDeltas:
		default:
			t.Fatalf("1.16 nether produced non-nether biome %d", b)
		}
	}
}

func TestEndCenterIsMainIsland(t *testing.T) {
	g := NewGenerator(Version1_18, 0)
	g.ApplySeed(End, 5)

	if b := g.BiomeAt(1, 0, 63, 0); b != TheEnd {
		t.Errorf("end origin biome = %d, want %d", b, TheEnd)
	}
	outer := g.BiomeAt(1, 50000, 63, 50000)
	switch outer {
	case SmallEndIslands, EndMidlands, EndHighlands, EndBarrens:
	default:
		t.Errorf("far end biome = %d, want an outer-end biome", outer)
	}
}

func TestVersionGatesModernBiomes(t *testing.T) {
	gated := map[Biome]Version{
		Meadow: Version1_18, Grove: Version1_18, SnowySlopes: Version1_18,
		JaggedPeaks: Version1_18, FrozenPeaks: Version1_18, StonyPeaks: Version1_18,
		DeepDark: Version1_19, MangroveSwamp: Version1_19,
		CherryGrove: Version1_20, PaleGarden: Version1_21,
	}

	g := NewGenerator(Version1_12, 0)
	g.ApplySeed(Overworld, 31337)
	for i := -300; i < 300; i++ {
		b := g.BiomeAt(16, i*7, 63, i*-13)
		if _, bad := gated[b]; bad {
			t.Fatalf("1.12 generator produced %d, gated to %s", b, gated[b])
		}
	}
}

func TestUnconfiguredGeneratorReturnsNone(t *testing.T) {
	var g Generator
	if b := g.BiomeAt(1, 0, 63, 0); b != BiomeNone {
		t.Errorf("zero-value BiomeAt = %d, want %d", b, BiomeNone)
	}
	buf := make([]int32, 4)
	if status := g.GenBiomes(buf, Range{Scale: 1, Sx: 2, Sz: 2, Y: 63}); status == 0 {
		t.Error("zero-value GenBiomes succeeded, want non-zero status")
	}
}

func TestClassification(t *testing.T) {
	oceans := []Biome{Ocean, DeepOcean, FrozenOcean, DeepFrozenOcean, ColdOcean,
		DeepColdOcean, LukewarmOcean, DeepLukewarmOcean, WarmOcean, DeepWarmOcean}
	for _, b := range oceans {
		if !IsOceanic(b) {
			t.Errorf("IsOceanic(%d) = false", b)
		}
	}
	for _, b := range []Biome{Plains, River, Beach, Swamp, DripstoneCaves} {
		if IsOceanic(b) {
			t.Errorf("IsOceanic(%d) = true", b)
		}
	}

	for _, b := range []Biome{SnowyPlains, IceSpikes, FrozenRiver, SnowySlopes, FrozenPeaks} {
		if !IsSnowy(b) {
			t.Errorf("IsSnowy(%d) = false", b)
		}
	}
	for _, b := range []Biome{Desert, Jungle, Ocean, Plains} {
		if IsSnowy(b) {
			t.Errorf("IsSnowy(%d) = true", b)
		}
	}
}
