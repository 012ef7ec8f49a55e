package shapes

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"shapegen/internal/solid"
)

// Part is one named solid produced by a shape build. Multi-piece shapes
// (case base + lid) return one Part per piece; the part name is the output
// file stem.
type Part struct {
	Name  string
	Solid solid.Solid
}

// Shape is a registered parametric model. Build composes the shape's solids
// from its default parameters, optionally overridden by a YAML document
// (nil or empty means defaults). Builds are pure: no build mutates shared
// state, so concurrent builds of different shapes are safe.
type Shape struct {
	Name        string
	Description string
	Build       func(overrides []byte) ([]Part, error)
}

// registry maps shape names to their builders. Shapes register themselves
// from init so the map is complete before main runs.
var registry = map[string]Shape{}

func register(s Shape) {
	registry[s.Name] = s
}

// Lookup returns the shape with the given name. Lookup is case-insensitive.
func Lookup(name string) (Shape, bool) {
	s, ok := registry[strings.ToLower(name)]
	return s, ok
}

// Names returns all registered shape names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered shapes, sorted by name.
func All() []Shape {
	all := make([]Shape, 0, len(registry))
	for _, name := range Names() {
		all = append(all, registry[name])
	}
	return all
}

// decode applies a YAML override document to an options struct. Unknown
// fields are ignored so a single params file can carry overrides for more
// than one shape.
func decode(overrides []byte, opts interface{}) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(overrides, opts); err != nil {
		return fmt.Errorf("parse params: %w", err)
	}
	return nil
}
