package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/blackwell-systems/cellarctl/internal/util"
)

// DateLayout is the format of rating and open-bottle dates.
const DateLayout = "2006-01-02"

// Catalog holds the loaded collections and answers lookups.
// It is read-only once built.
type Catalog struct {
	wines       []Wine
	openBottles []OpenBottle
	ratings     []Rating

	byID        map[string]int
	bottleByID  map[string]int
	ratingsByID map[string][]int
	fingerprint string
}

// New indexes a decoded document.
func New(doc Document) *Catalog {
	c := &Catalog{
		wines:       doc.Wines,
		openBottles: doc.OpenBottles,
		ratings:     doc.Ratings,
		byID:        make(map[string]int, len(doc.Wines)),
		bottleByID:  make(map[string]int, len(doc.OpenBottles)),
		ratingsByID: make(map[string][]int),
	}
	for i, w := range c.wines {
		if _, dup := c.byID[w.ID]; !dup {
			c.byID[w.ID] = i
		}
	}
	for i, b := range c.openBottles {
		if _, dup := c.bottleByID[b.WineID]; !dup {
			c.bottleByID[b.WineID] = i
		}
	}
	for i, r := range c.ratings {
		c.ratingsByID[r.WineID] = append(c.ratingsByID[r.WineID], i)
	}
	return c
}

// Empty returns a catalog with no data.
func Empty() *Catalog {
	return New(Document{})
}

func (c *Catalog) Wines() []Wine             { return c.wines }
func (c *Catalog) OpenBottles() []OpenBottle { return c.openBottles }
func (c *Catalog) Ratings() []Rating         { return c.ratings }
func (c *Catalog) Len() int                  { return len(c.wines) }

// Fingerprint is the sha256 of the source document, or "" for catalogs
// built in memory.
func (c *Catalog) Fingerprint() string { return c.fingerprint }

func (c *Catalog) withFingerprint(data []byte) *Catalog {
	c.fingerprint = util.SHA256Bytes(data)
	return c
}

// Wine returns the wine with the given id.
func (c *Catalog) Wine(id string) (Wine, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Wine{}, false
	}
	return c.wines[i], true
}

// RatingsFor returns the ratings of a wine in document order.
func (c *Catalog) RatingsFor(wineID string) []Rating {
	idx := c.ratingsByID[wineID]
	out := make([]Rating, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.ratings[i])
	}
	return out
}

// OpenBottleFor returns the open bottle of a wine, if any.
func (c *Catalog) OpenBottleFor(wineID string) (OpenBottle, bool) {
	i, ok := c.bottleByID[wineID]
	if !ok {
		return OpenBottle{}, false
	}
	return c.openBottles[i], true
}

// AverageRating is the mean of all stars given to a wine.
// ok is false when the wine has no ratings.
func (c *Catalog) AverageRating(wineID string) (avg float64, ok bool) {
	idx := c.ratingsByID[wineID]
	if len(idx) == 0 {
		return 0, false
	}
	var total float64
	for _, i := range idx {
		total += c.ratings[i].Stars
	}
	return total / float64(len(idx)), true
}

// LastTasted returns the latest parseable rating date of a wine.
func (c *Catalog) LastTasted(wineID string) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, i := range c.ratingsByID[wineID] {
		d, err := time.Parse(DateLayout, c.ratings[i].Date)
		if err != nil {
			continue
		}
		if !found || d.After(latest) {
			latest = d
			found = true
		}
	}
	return latest, found
}

// HasNotes reports whether any rating of the wine carries non-blank notes.
func (c *Catalog) HasNotes(wineID string) bool {
	for _, i := range c.ratingsByID[wineID] {
		if strings.TrimSpace(c.ratings[i].Notes) != "" {
			return true
		}
	}
	return false
}

// Locations returns the distinct storage locations, sorted case-insensitively.
func (c *Catalog) Locations() []string {
	var all []string
	for _, w := range c.wines {
		all = append(all, w.Locations...)
	}
	return SortedFold(all)
}

// SortedFold deduplicates values and sorts them case-insensitively.
// Exact ties fall back to byte order so the result is deterministic.
func SortedFold(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i]), strings.ToLower(out[j])
		if a != b {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}
