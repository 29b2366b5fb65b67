// Command biomemap renders a biome map for a seed to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/OCharnyshevich/biome-atlas/pkg/biome"
	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
	"github.com/OCharnyshevich/biome-atlas/pkg/mc"
)

func main() {
	var (
		seed    = flag.Int64("seed", 0, "world seed")
		version = flag.String("version", "1.18", "game version")
		dimName = flag.String("dim", "overworld", "dimension: overworld, nether, end")
		scale   = flag.Int("scale", 4, "blocks per pixel: 1, 4, 16, 64 or 256")
		x       = flag.Int("x", -256, "west edge in scaled coordinates")
		z       = flag.Int("z", -256, "north edge in scaled coordinates")
		width   = flag.Int("w", 512, "map width in pixels")
		height  = flag.Int("h", 512, "map height in pixels")
		y       = flag.Int("y", 63, "sample height in blocks")
		large   = flag.Bool("large-biomes", false, "use large biomes generation")
		out     = flag.String("o", "biomes.png", "output PNG path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	v, err := mc.Parse(*version)
	if err != nil {
		log.Error("parse version", "error", err)
		os.Exit(1)
	}
	dim, err := parseDim(*dimName)
	if err != nil {
		log.Error("parse dimension", "error", err)
		os.Exit(1)
	}

	var flags uint32
	if *large {
		flags |= cubegen.FlagLargeBiomes
	}

	gen := cubegen.NewGenerator(v, flags)
	gen.ApplySeed(dim, uint64(*seed))

	r := cubegen.Range{Scale: *scale, X: *x, Z: *z, Sx: *width, Sz: *height, Y: *y}
	if !r.Valid() {
		log.Error("invalid map range", "scale", *scale, "w", *width, "h", *height)
		os.Exit(1)
	}

	cells := make([]int32, r.Cells())
	if gen.GenBiomes(cells, r) != 0 {
		log.Error("biome generation failed")
		os.Exit(1)
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	for j := 0; j < *height; j++ {
		for i := 0; i < *width; i++ {
			img.Set(i, j, pixelColor(cubegen.Biome(cells[j**width+i])))
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Error("create output", "error", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Error("encode png", "error", err)
		os.Exit(1)
	}

	log.Info("map written", "path", *out, "seed", *seed, "version", v.String(), "scale", *scale)
}

// pixelColor maps a biome to its map color, with a slight darkening of
// deep oceans so depth reads at a glance.
func pixelColor(b cubegen.Biome) color.RGBA {
	c := biome.Color(b)
	r := int(c >> 16 & 0xFF)
	g := int(c >> 8 & 0xFF)
	bl := int(c & 0xFF)
	if b == cubegen.DeepOcean || b == cubegen.DeepFrozenOcean || b == cubegen.DeepColdOcean || b == cubegen.DeepLukewarmOcean {
		r, g, bl = r*3/4, g*3/4, bl*3/4
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(bl), A: 0xFF}
}

func parseDim(s string) (cubegen.Dimension, error) {
	switch s {
	case "overworld":
		return cubegen.Overworld, nil
	case "nether":
		return cubegen.Nether, nil
	case "end":
		return cubegen.End, nil
	}
	return cubegen.Overworld, fmt.Errorf("unknown dimension %q", s)
}
