package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/OCharnyshevich/biome-atlas/internal/tilecache"
	"github.com/OCharnyshevich/biome-atlas/pkg/biome"
	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
	"github.com/OCharnyshevich/biome-atlas/pkg/mc"
)

// tileRequest is the parsed and validated query for one biome tile.
type tileRequest struct {
	version cubegen.Version
	flags   uint32
	seed    uint64
	dim     cubegen.Dimension
	rng     cubegen.Range
}

// paletteEntry carries the rendering metadata for one biome id present
// in a tile.
type paletteEntry struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	GrassColor string `json:"grassColor"`
	BaseHeight int    `json:"baseHeight"`
	Trees      int    `json:"trees"`
	Ocean      bool   `json:"ocean"`
	Snowy      bool   `json:"snowy"`
}

type tileResponse struct {
	Version string                  `json:"version"`
	Seed    string                  `json:"seed"`
	Dim     string                  `json:"dim"`
	Scale   int                     `json:"scale"`
	X       int                     `json:"x"`
	Z       int                     `json:"z"`
	Sx      int                     `json:"sx"`
	Sz      int                     `json:"sz"`
	Y       int                     `json:"y"`
	Cached  bool                    `json:"cached"`
	Biomes  []int32                 `json:"biomes"`
	Palette map[string]paletteEntry `json:"palette"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func parseDimension(s string) (cubegen.Dimension, error) {
	switch s {
	case "", "overworld", "0":
		return cubegen.Overworld, nil
	case "nether", "-1":
		return cubegen.Nether, nil
	case "end", "1":
		return cubegen.End, nil
	}
	return cubegen.Overworld, fmt.Errorf("unknown dimension %q", s)
}

func dimensionName(d cubegen.Dimension) string {
	switch d {
	case cubegen.Nether:
		return "nether"
	case cubegen.End:
		return "end"
	default:
		return "overworld"
	}
}

// parseSeed accepts both unsigned and signed decimal seeds, since hosts
// commonly print world seeds as signed 64-bit values.
func parseSeed(s string) (uint64, error) {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed seed %q", s)
	}
	return uint64(i), nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q", name, s)
	}
	return v, nil
}

func (s *Server) parseTileRequest(r *http.Request) (tileRequest, error) {
	var req tileRequest

	versionStr := r.URL.Query().Get("version")
	if versionStr == "" {
		versionStr = s.cfg.Version
	}
	v, err := mc.Parse(versionStr)
	if err != nil {
		return req, err
	}
	req.version = v

	if f := r.URL.Query().Get("flags"); f != "" {
		u, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return req, fmt.Errorf("malformed flags %q", f)
		}
		req.flags = uint32(u)
	}

	seedStr := r.URL.Query().Get("seed")
	if seedStr == "" {
		return req, fmt.Errorf("missing seed")
	}
	if req.seed, err = parseSeed(seedStr); err != nil {
		return req, err
	}

	if req.dim, err = parseDimension(r.URL.Query().Get("dim")); err != nil {
		return req, err
	}

	if req.rng.Scale, err = queryInt(r, "scale", 4); err != nil {
		return req, err
	}
	if req.rng.X, err = queryInt(r, "x", 0); err != nil {
		return req, err
	}
	if req.rng.Z, err = queryInt(r, "z", 0); err != nil {
		return req, err
	}
	if req.rng.Sx, err = queryInt(r, "sx", 0); err != nil {
		return req, err
	}
	if req.rng.Sz, err = queryInt(r, "sz", 0); err != nil {
		return req, err
	}
	if req.rng.Y, err = queryInt(r, "y", 63); err != nil {
		return req, err
	}

	if !req.rng.Valid() {
		return req, fmt.Errorf("invalid range: scale must be 1/4/16/64/256 and sx, sz positive")
	}
	return req, nil
}

func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseTileRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.rng.Cells() > s.cfg.TileMaxCells {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("tile of %d cells exceeds limit %d", req.rng.Cells(), s.cfg.TileMaxCells))
		return
	}

	grid, cached, err := s.generateTile(req)
	if err != nil {
		s.log.Error("generate tile", "error", err)
		writeError(w, http.StatusInternalServerError, "tile generation failed")
		return
	}

	resp := tileResponse{
		Version: req.version.String(),
		Seed:    strconv.FormatUint(req.seed, 10),
		Dim:     dimensionName(req.dim),
		Scale:   req.rng.Scale,
		X:       req.rng.X,
		Z:       req.rng.Z,
		Sx:      req.rng.Sx,
		Sz:      req.rng.Sz,
		Y:       req.rng.Y,
		Cached:  cached,
		Biomes:  grid,
		Palette: buildPalette(grid),
	}
	writeJSON(w, http.StatusOK, resp)
}

// generateTile returns the tile grid, consulting the cache when enabled.
func (s *Server) generateTile(req tileRequest) ([]int32, bool, error) {
	key := tilecache.Key{
		Version: req.version,
		Flags:   req.flags,
		Seed:    req.seed,
		Dim:     req.dim,
		Scale:   req.rng.Scale,
		X:       req.rng.X,
		Z:       req.rng.Z,
		Sx:      req.rng.Sx,
		Sz:      req.rng.Sz,
		Y:       req.rng.Y,
	}

	if s.cache != nil {
		grid, ok, err := s.cache.Get(key)
		if err != nil {
			s.log.Warn("tile cache read", "error", err)
		} else if ok {
			return grid, true, nil
		}
	}

	gen := cubegen.NewGenerator(req.version, req.flags)
	gen.ApplySeed(req.dim, req.seed)

	grid := make([]int32, req.rng.Cells())
	if status := gen.GenBiomes(grid, req.rng); status != 0 {
		return nil, false, fmt.Errorf("generator status %d", status)
	}

	if s.cache != nil {
		if err := s.cache.Put(key, grid); err != nil {
			s.log.Warn("tile cache write", "error", err)
		}
	}
	return grid, false, nil
}

// buildPalette collects metadata for the distinct biome ids in a grid.
func buildPalette(grid []int32) map[string]paletteEntry {
	palette := make(map[string]paletteEntry)
	for _, id := range grid {
		key := strconv.Itoa(int(id))
		if _, ok := palette[key]; ok {
			continue
		}
		b := cubegen.Biome(id)
		palette[key] = paletteEntry{
			Name:       biome.Name(b),
			Color:      fmt.Sprintf("#%06X", biome.Color(b)),
			GrassColor: fmt.Sprintf("#%06X", biome.GrassColor(b)),
			BaseHeight: biome.BaseHeight(b),
			Trees:      int(biome.Trees(b)),
			Ocean:      biome.IsOceanic(b),
			Snowy:      biome.IsSnowy(b),
		}
	}
	return palette
}

// biomeInfo is one row of the full metadata dump.
type biomeInfo struct {
	ID int32 `json:"id"`
	paletteEntry
}

func (s *Server) handleBiomes(w http.ResponseWriter, _ *http.Request) {
	known := biome.Known()
	sort.Slice(known, func(i, j int) bool { return known[i] < known[j] })

	out := make([]biomeInfo, 0, len(known))
	for _, b := range known {
		out = append(out, biomeInfo{
			ID: int32(b),
			paletteEntry: paletteEntry{
				Name:       biome.Name(b),
				Color:      fmt.Sprintf("#%06X", biome.Color(b)),
				GrassColor: fmt.Sprintf("#%06X", biome.GrassColor(b)),
				BaseHeight: biome.BaseHeight(b),
				Trees:      int(biome.Trees(b)),
				Ocean:      biome.IsOceanic(b),
				Snowy:      biome.IsSnowy(b),
			},
		})
	}
	writeJSON(w, http.StatusOK, out)
}
