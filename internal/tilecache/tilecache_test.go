package tilecache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tiles.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testKey() Key {
	return Key{
		Version: cubegen.Version1_18,
		Seed:    12345,
		Dim:     cubegen.Overworld,
		Scale:   4,
		X:       -8, Z: 5,
		Sx: 16, Sz: 12,
		Y: 63,
	}
}

func TestMissThenRoundtrip(t *testing.T) {
	s := openTestStore(t)
	k := testKey()

	if _, ok, err := s.Get(k); err != nil || ok {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}

	grid := make([]int32, k.Sx*k.Sz)
	for i := range grid {
		grid[i] = int32(i % 7)
	}
	if err := s.Put(k, grid); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(k)
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if len(got) != len(grid) {
		t.Fatalf("got %d cells, want %d", len(got), len(grid))
	}
	for i := range grid {
		if got[i] != grid[i] {
			t.Fatalf("cell %d: got %d, want %d", i, got[i], grid[i])
		}
	}
}

func TestDistinctKeysDoNotCollide(t *testing.T) {
	s := openTestStore(t)

	k1 := testKey()
	k2 := testKey()
	k2.Seed = 54321

	if err := s.Put(k1, []int32{1, 1, 1, 1}); err != nil {
		t.Fatalf("Put k1: %v", err)
	}
	if err := s.Put(k2, []int32{2, 2, 2, 2}); err != nil {
		t.Fatalf("Put k2: %v", err)
	}

	got, ok, err := s.Get(k1)
	if err != nil || !ok {
		t.Fatalf("Get k1: ok=%v err=%v", ok, err)
	}
	if got[0] != 1 {
		t.Errorf("k1 grid overwritten by k2: got %d", got[0])
	}
}

func TestPutReplaces(t *testing.T) {
	s := openTestStore(t)
	k := testKey()

	if err := s.Put(k, []int32{1}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(k, []int32{9}); err != nil {
		t.Fatalf("re-Put: %v", err)
	}
	got, ok, err := s.Get(k)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got[0] != 9 {
		t.Errorf("got %d, want replaced value 9", got[0])
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)
	if err := s.Put(testKey(), []int32{1, 2, 3}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Nothing is older than an hour yet.
	n, err := s.Prune(time.Hour)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 0 {
		t.Errorf("Prune(1h) removed %d entries, want 0", n)
	}

	// A zero max age removes everything written before now.
	n, err = s.Prune(-time.Second)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Errorf("Prune(-1s) removed %d entries, want 1", n)
	}
}
