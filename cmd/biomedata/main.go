// Command biomedata downloads PrismarineJS biome definitions, cross-checks
// them against the built-in registry names, and emits a Go source table for
// use in metadata tests.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/biome-atlas/pkg/biome"
)

// biomeDef is one entry of the upstream biomes.json.
type biomeDef struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	DisplayName string  `json:"displayName"`
	Temperature float64 `json:"temperature"`
	Dimension   string  `json:"dimension"`
	Color       int     `json:"color"`
}

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		platform = flag.String("platform", "pc", "platform of the data set")
		ver      = flag.String("version", "1.18", "game version of the data set")
		out      = flag.String("o", "./biomedata", "download dir path")
		gen      = flag.String("gen", "upstream_biomes_gen.go", "generated Go table path, empty skips emission")
		pkg      = flag.String("pkg", "biomedata", "package name of the generated table")
	)
	flag.Parse()

	if *out == "" {
		log.Fatal("download dir path required")
	}

	path := fmt.Sprintf("%s/%s-%s", *out, *platform, *ver)

	if err := os.RemoveAll(path); err != nil {
		log.Fatal(err)
	}

	log.Printf("start downloading biome data %s", path)

	// https://github.com/PrismarineJS/minecraft-data/tree/master/data/pc/1.18
	url := fmt.Sprintf("git::%s//data/%s/%s", *base, *platform, *ver)
	if err := get.Get(path, url); err != nil {
		log.Fatal(err)
	}

	defs, err := loadBiomeDefs(filepath.Join(path, "biomes.json"))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %d upstream biome definitions", len(defs))

	for _, diff := range crossCheck(defs) {
		log.Printf("cross-check: %s", diff)
	}

	if *gen == "" {
		return
	}
	f, err := os.Create(*gen)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := emitTable(f, *pkg, *ver, defs); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *gen)
}

func loadBiomeDefs(path string) ([]biomeDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read biome data: %w", err)
	}
	var defs []biomeDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return defs, nil
}

// crossCheck compares the built-in registry against the upstream set and
// reports names present on only one side. Numeric ids are not compared:
// upstream uses per-version registry ordinals, not the classic id space.
func crossCheck(defs []biomeDef) []string {
	upstream := make(map[string]bool, len(defs))
	for _, d := range defs {
		upstream[d.Name] = true
	}

	var diffs []string
	local := make(map[string]bool)
	for _, b := range biome.Known() {
		name := biome.Name(b)
		local[name] = true
		if !upstream[name] {
			diffs = append(diffs, fmt.Sprintf("%s (id %d) missing upstream", name, b))
		}
	}
	for _, d := range defs {
		if !local[d.Name] {
			diffs = append(diffs, fmt.Sprintf("%s not in the built-in tables", d.Name))
		}
	}
	sort.Strings(diffs)
	return diffs
}

var tableTmpl = template.Must(template.New("table").Parse(`// Code generated by biomedata. DO NOT EDIT.

package {{.Package}}

// upstreamBiome mirrors one PrismarineJS biome definition for version {{.Version}}.
type upstreamBiome struct {
	ID          int32
	Category    string
	Dimension   string
	Temperature float64
}

var upstreamBiomes = map[string]upstreamBiome{
{{- range .Defs}}
	{{printf "%q" .Name}}: { {{- .ID}}, {{printf "%q" .Category}}, {{printf "%q" .Dimension}}, {{.Temperature}}},
{{- end}}
}
`))

// emitTable writes the upstream definitions as a Go map keyed by registry
// name, sorted for stable diffs.
func emitTable(w io.Writer, pkg, version string, defs []biomeDef) error {
	sorted := make([]biomeDef, len(defs))
	copy(sorted, defs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	return tableTmpl.Execute(w, struct {
		Package string
		Version string
		Defs    []biomeDef
	}{Package: pkg, Version: version, Defs: sorted})
}
