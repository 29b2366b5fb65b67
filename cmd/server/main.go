package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/biome-atlas/internal/server"
	"github.com/OCharnyshevich/biome-atlas/internal/server/config"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.Version, "version", cfg.Version, "default game version for requests that omit one")
	flag.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "tile cache database path, empty disables caching")
	flag.IntVar(&cfg.TileMaxCells, "tile-max-cells", cfg.TileMaxCells, "maximum cells per tile request")
	flag.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "requests per second per client, 0 disables")
	flag.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "rate limiter burst size")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fileCfg := config.DefaultConfig()
	if err := config.LoadFile(*configPath, fileCfg); err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	config.Merge(cfg, fileCfg, explicit)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("server setup", "error", err)
		os.Exit(1)
	}
	defer srv.Close()

	if err := srv.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
