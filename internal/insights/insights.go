// Package insights computes the dashboard counters shown by the status and
// insights commands.
package insights

import (
	"github.com/blackwell-systems/cellarctl/internal/filter"
)

// TopRatingStars is the threshold for a rating to count as a top rating.
const TopRatingStars = 4.5

// Summary holds the cellar counters.
type Summary struct {
	Wines             int `json:"wines"`
	Bottles           int `json:"bottles"`
	DrinkReady        int `json:"drink_ready"`
	SoonDue           int `json:"soon_due"`
	TopRatings        int `json:"top_ratings"`
	OpenBottles       int `json:"open_bottles"`
	OpenPastFreshness int `json:"open_past_recommendation"`
}

// Summarize counts wines by readiness, ratings at or above TopRatingStars
// and open bottles by freshness.
func Summarize(env filter.Env) Summary {
	c := env.Catalog
	s := Summary{Wines: c.Len()}
	for _, w := range c.Wines() {
		s.Bottles += w.Quantity
		switch filter.ReadinessFor(env.Year, w.DrinkWindow) {
		case filter.ReadinessOptimal:
			s.DrinkReady++
		case filter.ReadinessClosing:
			s.SoonDue++
		}
	}
	for _, r := range c.Ratings() {
		if r.Stars >= TopRatingStars {
			s.TopRatings++
		}
	}
	for _, b := range c.OpenBottles() {
		s.OpenBottles++
		if filter.FreshnessOf(b) == filter.FreshnessWarningExceeded {
			s.OpenPastFreshness++
		}
	}
	return s
}
