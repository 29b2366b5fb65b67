// Package tilecache persists generated biome tiles in SQLite so repeated
// map queries for the same (version, flags, seed, dimension, range) are
// served without re-running the generator. Uses the pure-Go
// modernc.org/sqlite driver; payloads are zstd-compressed int32 grids.
package tilecache

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
)

// Key identifies one cached tile. Two hosts asking for the same key get
// byte-identical grids because the generator is deterministic.
type Key struct {
	Version cubegen.Version
	Flags   uint32
	Seed    uint64
	Dim     cubegen.Dimension
	Scale   int
	X, Z    int
	Sx, Sz  int
	Y       int
}

func (k Key) id() string {
	return fmt.Sprintf("v%d.f%d.s%d.d%d/%d:%d,%d+%dx%d@%d",
		k.Version, k.Flags, k.Seed, k.Dim, k.Scale, k.X, k.Z, k.Sx, k.Sz, k.Y)
}

// Store is a SQLite-backed tile cache.
type Store struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open creates or opens the cache database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("tilecache: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("tilecache: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("tilecache: connect: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS tiles (
			key        TEXT PRIMARY KEY,
			cells      INTEGER NOT NULL,
			payload    BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("tilecache: create schema: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("tilecache: init encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("tilecache: init decoder: %w", err)
	}

	return &Store{db: db, enc: enc, dec: dec}, nil
}

// Close releases the database and codec resources.
func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}

// Get returns the cached grid for k, or (nil, false, nil) on a miss.
func (s *Store) Get(k Key) ([]int32, bool, error) {
	var cells int
	var payload []byte
	err := s.db.QueryRow(`SELECT cells, payload FROM tiles WHERE key = ?`, k.id()).
		Scan(&cells, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("tilecache: query: %w", err)
	}

	raw, err := s.dec.DecodeAll(payload, nil)
	if err != nil {
		return nil, false, fmt.Errorf("tilecache: decompress: %w", err)
	}
	if len(raw) != cells*4 {
		return nil, false, fmt.Errorf("tilecache: payload is %d bytes, want %d", len(raw), cells*4)
	}

	grid := make([]int32, cells)
	for i := range grid {
		grid[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return grid, true, nil
}

// Put stores a grid under k, replacing any previous entry.
func (s *Store) Put(k Key, grid []int32) error {
	raw := make([]byte, len(grid)*4)
	for i, v := range grid {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(v))
	}
	payload := s.enc.EncodeAll(raw, nil)

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO tiles (key, cells, payload, created_at) VALUES (?, ?, ?, ?)`,
		k.id(), len(grid), payload, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("tilecache: insert: %w", err)
	}
	return nil
}

// Prune deletes entries older than maxAge and returns how many were removed.
func (s *Store) Prune(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()
	res, err := s.db.Exec(`DELETE FROM tiles WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("tilecache: prune: %w", err)
	}
	return res.RowsAffected()
}
