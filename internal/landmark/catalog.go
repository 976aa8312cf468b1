package landmark

import (
	"sort"
	"strings"
)

// defaultEntries is the built-in landmark table, keyed by lower-case region name
var defaultEntries = map[string][]string{
	"california": {"Yosemite National Park", "Big Sur", "Napa Valley"},
	"texas":      {"Alamo", "Big Bend National Park", "San Antonio River Walk"},
	"new york":   {"Niagara Falls", "Adirondack Mountains", "Finger Lakes"},
	"florida":    {"Everglades", "Key West", "Disney World"},
	"colorado":   {"Rocky Mountain National Park", "Garden of the Gods", "Aspen"},
	"arizona":    {"Grand Canyon", "Sedona", "Antelope Canyon"},
	"utah":       {"Arches National Park", "Zion National Park", "Bryce Canyon"},
	"nevada":     {"Hoover Dam", "Lake Tahoe", "Valley of Fire"},
	"oregon":     {"Crater Lake", "Columbia River Gorge", "Cannon Beach"},
	"washington": {"Mount Rainier", "Space Needle", "Olympic National Park"},
}

// Catalog is a read-only table of well-known landmarks per region.
// It is safe for concurrent use.
type Catalog struct {
	entries map[string][]string
}

// NewCatalog builds a catalog from the built-in table with extra entries
// merged over it. Extra keys are normalized and entries with no landmarks
// are ignored.
func NewCatalog(extra map[string][]string) *Catalog {
	entries := make(map[string][]string, len(defaultEntries)+len(extra))
	for k, v := range defaultEntries {
		entries[k] = v
	}
	for k, v := range extra {
		key := Normalize(k)
		if key == "" || len(v) == 0 {
			continue
		}
		entries[key] = append([]string(nil), v...)
	}
	return &Catalog{entries: entries}
}

// Normalize trims and lower-cases a location name
func Normalize(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

// Lookup returns a copy of the landmarks stored for location
func (c *Catalog) Lookup(location string) ([]string, bool) {
	v, ok := c.entries[Normalize(location)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), v...), true
}

// Regions lists every region in the catalog, sorted
func (c *Catalog) Regions() []string {
	out := make([]string, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of regions in the catalog
func (c *Catalog) Len() int {
	return len(c.entries)
}
