package filter

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
)

// Env carries the read-only inputs every predicate may consult.
type Env struct {
	Catalog *catalog.Catalog
	Year    int
}

// NewEnv builds an Env for the year of now.
func NewEnv(c *catalog.Catalog, now time.Time) Env {
	return Env{Catalog: c, Year: now.Year()}
}

// Includes reports whether a wine passes the search text, the quick filters
// and the advanced filters. All three are pure and AND-combined.
func Includes(env Env, w catalog.Wine, search string, state State) bool {
	return MatchesSearch(w, search) &&
		MatchesQuick(env, w, state.Quick) &&
		MatchesAdvanced(env, w, state.Advanced)
}

// MatchesSearch checks the trimmed, case-insensitive query against the
// wine's text fields. An empty query matches everything.
func MatchesSearch(w catalog.Wine, search string) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	haystack := []string{
		w.Producer,
		w.Name,
		w.SubtitleLine(),
		w.Region,
		w.Appellation,
		w.Country,
	}
	haystack = append(haystack, w.Grapes...)
	haystack = append(haystack, w.Locations...)
	for _, field := range haystack {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// MatchesQuick applies quick filters: any selected option within a
// category, every category with a selection.
func MatchesQuick(env Env, w catalog.Wine, selected []QuickOption) bool {
	if len(selected) == 0 {
		return true
	}
	byCategory := make(map[Category][]QuickOption)
	for _, o := range selected {
		byCategory[o.Category] = append(byCategory[o.Category], o)
	}
	for _, cat := range Categories {
		options := byCategory[cat]
		if len(options) == 0 {
			continue
		}
		if !matchesCategory(env, w, cat, options) {
			return false
		}
	}
	return true
}

func matchesCategory(env Env, w catalog.Wine, cat Category, options []QuickOption) bool {
	switch cat {
	case CategoryStyle:
		return slices.ContainsFunc(options, func(o QuickOption) bool { return o.Style == w.Style })
	case CategoryStatus:
		statuses := StatusesFor(w, env.Catalog)
		return slices.ContainsFunc(options, func(o QuickOption) bool {
			return slices.Contains(statuses, o.Status)
		})
	case CategoryReadiness:
		r := ReadinessFor(env.Year, w.DrinkWindow)
		return slices.ContainsFunc(options, func(o QuickOption) bool { return o.Readiness == r })
	case CategoryRating:
		avg, rated := env.Catalog.AverageRating(w.ID)
		return slices.ContainsFunc(options, func(o QuickOption) bool {
			switch o.Rating {
			case RatingMinimumFour:
				return rated && avg >= 4
			case RatingMinimumFourPointFive:
				return rated && avg >= 4.5
			case RatingUnrated:
				return !rated
			}
			return false
		})
	case CategoryVintage:
		return slices.ContainsFunc(options, func(o QuickOption) bool { return o.Vintage.Contains(w.Vintage) })
	case CategoryPrice:
		return slices.ContainsFunc(options, func(o QuickOption) bool { return o.Price.Contains(w.Price) })
	case CategoryLocation:
		return slices.ContainsFunc(options, func(o QuickOption) bool {
			return slices.Contains(w.Locations, o.Location)
		})
	}
	return false
}

// MatchesAdvanced applies every set advanced criterion. Criteria that need
// data the wine does not have (price, rating, open bottle, tasting date)
// reject the wine.
func MatchesAdvanced(env Env, w catalog.Wine, a Advanced) bool {
	c := env.Catalog

	if len(a.Producers) > 0 && !slices.Contains(a.Producers, w.Producer) {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(a.NameQuery)); q != "" {
		if !strings.Contains(strings.ToLower(w.Name), q) &&
			!strings.Contains(strings.ToLower(w.Producer), q) {
			return false
		}
	}

	if len(a.Styles) > 0 && !slices.Contains(a.Styles, w.Style) {
		return false
	}

	if len(a.Grapes) > 0 {
		if !slices.ContainsFunc(a.Grapes, func(g string) bool { return grapeMatches(g, w.Grapes) }) {
			return false
		}
	}

	if a.ExcludeNV && w.Vintage == nil {
		return false
	}

	if a.Vintage != nil {
		if w.Vintage == nil || !a.Vintage.Contains(*w.Vintage) {
			return false
		}
	}

	if a.ABV != nil {
		if w.ABV == nil || !a.ABV.Contains(*w.ABV) {
			return false
		}
	}

	if a.DrinkWindow != nil {
		from, to := windowBounds(w.DrinkWindow)
		if !a.DrinkWindow.Overlaps(from, to) {
			return false
		}
	}

	if a.Relative != "" && !matchesRelative(env.Year, w.DrinkWindow, a.Relative) {
		return false
	}

	if len(a.Closures) > 0 && !slices.Contains(a.Closures, ClosureFor(w.Style)) {
		return false
	}

	if len(a.BottleSizes) > 0 && !slices.Contains(a.BottleSizes, BottleSizeML(w)) {
		return false
	}

	if len(a.Countries) > 0 && !slices.Contains(a.Countries, w.Country) {
		return false
	}
	if len(a.Regions) > 0 && !slices.Contains(a.Regions, w.Region) {
		return false
	}
	if len(a.Appellations) > 0 && !slices.Contains(a.Appellations, w.Appellation) {
		return false
	}

	if len(a.Locations) > 0 && !intersects(a.Locations, w.Locations) {
		return false
	}

	if len(a.ServingHints) > 0 && !intersects(a.ServingHints, ServingHintsFor(w.Style)) {
		return false
	}

	if a.Quantity != nil && !a.Quantity.Matches(w.Quantity) {
		return false
	}

	if a.Price != nil {
		if w.Price == nil || !a.Price.Contains(w.Price.Amount) {
			return false
		}
	}

	if a.MinRating != nil || a.IsRated != nil {
		avg, rated := c.AverageRating(w.ID)
		if a.MinRating != nil && (!rated || avg < *a.MinRating) {
			return false
		}
		if a.IsRated != nil && rated != *a.IsRated {
			return false
		}
	}

	if a.LastTasted != nil {
		last, ok := c.LastTasted(w.ID)
		if !ok || !a.LastTasted.Contains(last) {
			return false
		}
	}

	if a.HasNotes != nil && c.HasNotes(w.ID) != *a.HasNotes {
		return false
	}

	if a.OpenDays != nil || len(a.Preservation) > 0 || len(a.Freshness) > 0 {
		bottle, open := c.OpenBottleFor(w.ID)
		if !open {
			return false
		}
		if a.OpenDays != nil && !a.OpenDays.Contains(bottle.DaysOpen) {
			return false
		}
		if len(a.Preservation) > 0 && !slices.Contains(a.Preservation, bottle.Preservation) {
			return false
		}
		if len(a.Freshness) > 0 && !slices.Contains(a.Freshness, FreshnessOf(bottle)) {
			return false
		}
	}

	if len(a.Tags) > 0 && !intersects(a.Tags, Tags(w)) {
		return false
	}

	// Completeness flags are AND-combined: every selected flag must be present.
	if len(a.Completeness) > 0 {
		flags := CompletenessFlagsFor(w)
		for _, f := range a.Completeness {
			if !slices.Contains(flags, f) {
				return false
			}
		}
	}

	if a.Preset != "" && !MatchesPreset(env, w, a.Preset) {
		return false
	}

	return true
}

// MatchesPreset evaluates a smart preset.
func MatchesPreset(env Env, w catalog.Wine, p Preset) bool {
	switch p {
	case PresetDrinkReadyToday:
		r := ReadinessFor(env.Year, w.DrinkWindow)
		return r != ReadinessTooYoung && r != ReadinessPastPeak
	case PresetExpiringSoon:
		return w.DrinkWindow.To != nil && *w.DrinkWindow.To-env.Year <= 0
	case PresetRestockFavorites:
		return isFavouriteStyle(w.Style) && w.Quantity <= 2
	case PresetUnrated:
		_, rated := env.Catalog.AverageRating(w.ID)
		return !rated
	case PresetMissingMetadata:
		return len(CompletenessFlagsFor(w)) > 0
	case PresetOpenBottleWarning:
		f, ok := FreshnessFor(w, env.Catalog)
		return ok && f == FreshnessWarningExceeded
	}
	return false
}

// matchesRelative compares whole calendar years.
func matchesRelative(year int, w catalog.DrinkWindow, r RelativeWindow) bool {
	switch r {
	case ReadyWithinSixMonths:
		return w.From == nil || *w.From-year <= 1
	case EndingWithinTwelveMonths:
		return w.To != nil && *w.To-year <= 1
	}
	return false
}

// windowBounds opens missing bounds to the extremes of int.
func windowBounds(w catalog.DrinkWindow) (from, to int) {
	from, to = math.MinInt, math.MaxInt
	if w.From != nil {
		from = *w.From
	}
	if w.To != nil {
		to = *w.To
	}
	return from, to
}

func intersects[T comparable](want, have []T) bool {
	for _, v := range want {
		if slices.Contains(have, v) {
			return true
		}
	}
	return false
}
