package persona

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogSpec is the editable form of a catalog, as written in YAML.
type CatalogSpec struct {
	MaxRecommendations int                 `yaml:"max_recommendations"`
	Bands              []BandSpec          `yaml:"bands"`
	Cities             []CitySpec          `yaml:"cities"`
	Triggers           map[string][]string `yaml:"triggers"`
}

type BandSpec struct {
	Name     string   `yaml:"name"`
	MinIndex int      `yaml:"min_index"`
	Cities   []string `yaml:"cities"`
}

type CitySpec struct {
	Name string   `yaml:"name"`
	Tags []string `yaml:"tags"`
}

// Catalog is a validated, read-only scoring table. Safe for concurrent use.
type Catalog struct {
	maxRecommendations int
	bands              []band
	cityTags           map[string]map[string]struct{}
	triggers           map[string][]string
}

type band struct {
	name     string
	minIndex int
	cities   []string
}

var errCatalog = errors.New("invalid persona catalog")

// NewCatalog validates spec and builds a catalog from a private copy of it.
func NewCatalog(spec CatalogSpec) (*Catalog, error) {
	if spec.MaxRecommendations < 1 {
		return nil, fmt.Errorf("%w: max_recommendations must be at least 1", errCatalog)
	}
	if len(spec.Bands) == 0 {
		return nil, fmt.Errorf("%w: at least one band is required", errCatalog)
	}

	c := &Catalog{
		maxRecommendations: spec.MaxRecommendations,
		cityTags:           make(map[string]map[string]struct{}, len(spec.Cities)),
		triggers:           make(map[string][]string, len(spec.Triggers)),
	}

	for _, city := range spec.Cities {
		name := strings.TrimSpace(city.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: city with empty name", errCatalog)
		}
		if _, dup := c.cityTags[name]; dup {
			return nil, fmt.Errorf("%w: city %q declared twice", errCatalog, name)
		}
		tags := make(map[string]struct{}, len(city.Tags))
		for _, t := range NormalizeTags(city.Tags) {
			tags[t] = struct{}{}
		}
		c.cityTags[name] = tags
	}

	for i, b := range spec.Bands {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: band %d has no name", errCatalog, i)
		}
		if i == 0 && b.MinIndex != 0 {
			return nil, fmt.Errorf("%w: first band %q must start at 0, starts at %d", errCatalog, name, b.MinIndex)
		}
		if i > 0 && b.MinIndex <= spec.Bands[i-1].MinIndex {
			return nil, fmt.Errorf("%w: band %q must start above %d", errCatalog, name, spec.Bands[i-1].MinIndex)
		}
		if b.MinIndex > MaxRiskIndex() {
			return nil, fmt.Errorf("%w: band %q starts at %d, above the maximum index %d", errCatalog, name, b.MinIndex, MaxRiskIndex())
		}
		if len(b.Cities) == 0 {
			return nil, fmt.Errorf("%w: band %q lists no cities", errCatalog, name)
		}
		seen := make(map[string]struct{}, len(b.Cities))
		cities := make([]string, 0, len(b.Cities))
		for _, raw := range b.Cities {
			city := strings.TrimSpace(raw)
			if _, ok := c.cityTags[city]; !ok {
				return nil, fmt.Errorf("%w: band %q references unknown city %q", errCatalog, name, city)
			}
			if _, dup := seen[city]; dup {
				return nil, fmt.Errorf("%w: band %q lists %q twice", errCatalog, name, city)
			}
			seen[city] = struct{}{}
			cities = append(cities, city)
		}
		c.bands = append(c.bands, band{name: name, minIndex: b.MinIndex, cities: cities})
	}

	for trigger, tags := range spec.Triggers {
		key := NormalizeTag(trigger)
		if key == "" {
			return nil, fmt.Errorf("%w: empty trigger name", errCatalog)
		}
		c.triggers[key] = append(c.triggers[key], NormalizeTags(tags)...)
	}

	return c, nil
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var spec CatalogSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", errCatalog, err)
	}
	return NewCatalog(spec)
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read persona catalog: %w", err)
	}
	return ParseCatalog(data)
}

func (c *Catalog) MaxRecommendations() int { return c.maxRecommendations }

// BandNames lists persona labels from least to most adventurous.
func (c *Catalog) BandNames() []string {
	names := make([]string, len(c.bands))
	for i, b := range c.bands {
		names[i] = b.name
	}
	return names
}

// BandIndex returns the position of the band containing riskIndex.
func (c *Catalog) BandIndex(riskIndex int) int {
	idx := 0
	for i, b := range c.bands {
		if b.minIndex <= riskIndex {
			idx = i
		}
	}
	return idx
}

// Cities lists every city in the table, sorted by name.
func (c *Catalog) Cities() []string {
	out := make([]string, 0, len(c.cityTags))
	for name := range c.cityTags {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CityTags returns the safety tags of a city, sorted.
func (c *Catalog) CityTags(city string) []string {
	tags := c.cityTags[city]
	out := make([]string, 0, len(tags))
	for t := range tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// KnownTriggers lists trigger names that map to tags, sorted.
func (c *Catalog) KnownTriggers() []string {
	out := make([]string, 0, len(c.triggers))
	for t := range c.triggers {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// avoidedTags resolves anxiety triggers to the set of city tags they conflict with.
// A trigger always matches a tag of the same name as well as its mapped tags.
func (c *Catalog) avoidedTags(triggers []string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, t := range NormalizeTags(triggers) {
		out[t] = struct{}{}
		for _, tag := range c.triggers[t] {
			out[tag] = struct{}{}
		}
	}
	return out
}

func (c *Catalog) conflicts(city string, avoided map[string]struct{}) int {
	n := 0
	for tag := range c.cityTags[city] {
		if _, ok := avoided[tag]; ok {
			n++
		}
	}
	return n
}

// rank orders the band's cities: non-conflicting first in curated order, then
// conflicting ones by conflict count and curated order. The result is capped.
func (c *Catalog) rank(b band, avoided map[string]struct{}) []string {
	type candidate struct {
		city      string
		rank      int
		conflicts int
	}
	candidates := make([]candidate, 0, len(b.cities))
	seen := make(map[string]struct{}, len(b.cities))
	for i, city := range b.cities {
		if _, dup := seen[city]; dup {
			continue
		}
		seen[city] = struct{}{}
		candidates = append(candidates, candidate{city: city, rank: i, conflicts: c.conflicts(city, avoided)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].conflicts != candidates[j].conflicts {
			return candidates[i].conflicts < candidates[j].conflicts
		}
		return candidates[i].rank < candidates[j].rank
	})

	n := min(len(candidates), c.maxRecommendations)
	out := make([]string, n)
	for i := range n {
		out[i] = candidates[i].city
	}
	return out
}
