// Package server exposes the biome engine to rendering hosts over HTTP
// and WebSocket: stateless tile queries on the REST side, a stateful
// per-connection generator session on the socket side.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/cors"

	"github.com/OCharnyshevich/biome-atlas/internal/server/config"
	"github.com/OCharnyshevich/biome-atlas/internal/tilecache"
)

// Server is the map tile service.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	cache   *tilecache.Store // nil when caching is disabled
	limiter *rateLimiter
	enc     *zstd.Encoder
}

// New creates a Server, opening the tile cache if one is configured.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		log:     log,
		limiter: newRateLimiter(cfg.RateLimit, cfg.RateBurst),
	}

	if cfg.CachePath != "" {
		cache, err := tilecache.Open(cfg.CachePath)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	s.enc = enc
	return s, nil
}

// Close releases the cache and codec resources.
func (s *Server) Close() error {
	s.enc.Close()
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}

// Handler returns the full HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/v1/tile", s.handleTile)
	mux.HandleFunc("GET /api/v1/biomes", s.handleBiomes)
	mux.HandleFunc("/ws", s.handleWS)

	var h http.Handler = mux
	h = s.limiter.middleware(h)
	h = cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}).Handler(h)
	return h
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("server started",
		"addr", s.cfg.Addr,
		"version", s.cfg.Version,
		"cache", s.cfg.CachePath,
	)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.log.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
