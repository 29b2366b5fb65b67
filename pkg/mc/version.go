// Package mc translates public game release numbers into the generator
// library's version identifiers.
package mc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OCharnyshevich/biome-atlas/pkg/cubegen"
)

// DefaultVersion is returned for any release the table does not know.
// Falling back instead of failing keeps hosts built against newer release
// numbers working against this table.
const DefaultVersion = cubegen.Version1_18

var byMinor = map[int]cubegen.Version{
	12: cubegen.Version1_12,
	13: cubegen.Version1_13,
	14: cubegen.Version1_14,
	15: cubegen.Version1_15,
	16: cubegen.Version1_16,
	17: cubegen.Version1_17,
	18: cubegen.Version1_18,
	19: cubegen.Version1_19,
	20: cubegen.Version1_20,
	21: cubegen.Version1_21,
}

// VersionOf maps a (major, minor) release pair to a generator version.
// Releases 1.12 through 1.21 map exactly; everything else, including
// major versions other than 1, resolves to DefaultVersion.
func VersionOf(major, minor int) cubegen.Version {
	if major != 1 {
		return DefaultVersion
	}
	if v, ok := byMinor[minor]; ok {
		return v
	}
	return DefaultVersion
}

// Parse resolves a release string such as "1.18" or "1.20.4" (the patch
// component is ignored). Malformed strings are an error; well-formed but
// unknown releases fall back like VersionOf.
func Parse(s string) (cubegen.Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 {
		return cubegen.VersionUndef, fmt.Errorf("malformed version %q", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return cubegen.VersionUndef, fmt.Errorf("malformed version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return cubegen.VersionUndef, fmt.Errorf("malformed version %q: %w", s, err)
	}
	return VersionOf(major, minor), nil
}
