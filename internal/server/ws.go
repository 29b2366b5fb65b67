package server

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/OCharnyshevich/biome-atlas/internal/session"
	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
	"github.com/OCharnyshevich/biome-atlas/pkg/mc"
)

// Area responses larger than this many cells are sent zstd-compressed.
const compressThreshold = 4096

// maxWSMessageBytes bounds one client message; requests are small JSON
// objects, so anything bigger is misuse.
const maxWSMessageBytes = 4096

// originAllowed applies the CORS origin list to websocket upgrades. An
// empty list allows any origin, matching the REST side.
func (s *Server) originAllowed(r *http.Request) bool {
	if len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Non-browser clients send no Origin header.
		return true
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// wsRequest is one client message. Op selects the operation; the
// remaining fields are op-specific.
type wsRequest struct {
	Op      string `json:"op"` // "init", "seed", "biome", "area"
	Version string `json:"version,omitempty"`
	Flags   uint32 `json:"flags,omitempty"`
	SeedHi  uint32 `json:"seedHi,omitempty"`
	SeedLo  uint32 `json:"seedLo,omitempty"`
	Dim     string `json:"dim,omitempty"`
	Scale   int    `json:"scale,omitempty"`
	X       int    `json:"x,omitempty"`
	Y       *int   `json:"y,omitempty"` // nil defaults to sea level 63
	Z       int    `json:"z,omitempty"`
	Sx      int    `json:"sx,omitempty"`
	Sz      int    `json:"sz,omitempty"`
}

// wsResponse is the reply to one request. For area queries either Biomes
// or Payload is set: Payload carries base64-encoded zstd-compressed
// little-endian int32 samples for large tiles.
type wsResponse struct {
	Op      string  `json:"op"`
	OK      bool    `json:"ok"`
	Error   string  `json:"error,omitempty"`
	Biome   *int32  `json:"biome,omitempty"`
	Biomes  []int32 `json:"biomes,omitempty"`
	Payload string  `json:"payload,omitempty"`
}

// handleWS runs one generator session per connection, mirroring the
// boundary state machine: init, then seed, then queries.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: s.originAllowed}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxWSMessageBytes)

	log := s.log.With("remote", conn.RemoteAddr().String())
	log.Info("websocket session opened")
	defer log.Info("websocket session closed")

	sess := session.New()
	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("websocket read", "error", err)
			}
			return
		}

		resp := s.handleWSRequest(sess, req)
		if err := conn.WriteJSON(resp); err != nil {
			log.Warn("websocket write", "error", err)
			return
		}
	}
}

func (s *Server) handleWSRequest(sess *session.Session, req wsRequest) wsResponse {
	fail := func(format string, args ...any) wsResponse {
		return wsResponse{Op: req.Op, Error: fmt.Sprintf(format, args...)}
	}

	y := 63
	if req.Y != nil {
		y = *req.Y
	}

	switch req.Op {
	case "init":
		v, err := mc.Parse(req.Version)
		if err != nil {
			return fail("init: %v", err)
		}
		sess.Init(v, req.Flags)
		return wsResponse{Op: req.Op, OK: true}

	case "seed":
		dim, err := parseDimension(req.Dim)
		if err != nil {
			return fail("seed: %v", err)
		}
		if err := sess.ApplySeed(req.SeedHi, req.SeedLo, dim); err != nil {
			return fail("seed: %v", err)
		}
		return wsResponse{Op: req.Op, OK: true}

	case "biome":
		b := int32(sess.BiomeAt(req.Scale, req.X, y, req.Z))
		return wsResponse{Op: req.Op, OK: b != int32(cubegen.BiomeNone), Biome: &b}

	case "area":
		cells := req.Sx * req.Sz
		if req.Sx <= 0 || req.Sz <= 0 || cells > s.cfg.TileMaxCells {
			return fail("area: invalid size %dx%d", req.Sx, req.Sz)
		}
		buf, err := session.AllocBiomeBuffer(req.Sx, req.Sz)
		if err != nil {
			return fail("area: %v", err)
		}
		defer session.FreeBuffer(buf)

		status := sess.GenBiomes2D(buf, req.Scale, req.X, req.Z, req.Sx, req.Sz, y)
		if status != session.StatusOK {
			return fail("area: generator status %d", status)
		}

		if cells >= compressThreshold {
			return wsResponse{Op: req.Op, OK: true, Payload: s.packGrid(buf.Data)}
		}
		// Copy out: the buffer is released when this handler returns.
		grid := make([]int32, cells)
		copy(grid, buf.Data)
		return wsResponse{Op: req.Op, OK: true, Biomes: grid}

	default:
		return fail("unknown op %q", req.Op)
	}
}

// packGrid encodes samples as little-endian int32, compresses with zstd,
// and base64-encodes the result for JSON transport.
func (s *Server) packGrid(grid []int32) string {
	raw := make([]byte, len(grid)*4)
	for i, v := range grid {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(v))
	}
	return base64.StdEncoding.EncodeToString(s.enc.EncodeAll(raw, nil))
}
