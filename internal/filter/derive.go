package filter

import (
	"strings"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
)

// FreshnessLimitDays is the number of days an open bottle stays within the
// recommendation.
const FreshnessLimitDays = 3

// StandardBottleML is the only bottle size in the dataset.
const StandardBottleML = 750

// ReadinessFor classifies a drink window for the given year. The check order
// matters: a wine whose window ends this year is closing, not optimal.
func ReadinessFor(year int, w catalog.DrinkWindow) Readiness {
	if w.From != nil && year < *w.From {
		return ReadinessTooYoung
	}
	if w.To != nil {
		if year > *w.To {
			return ReadinessPastPeak
		}
		if year == *w.To {
			return ReadinessClosing
		}
	}
	return ReadinessOptimal
}

// StatusesFor derives the inventory statuses of a wine.
func StatusesFor(w catalog.Wine, c *catalog.Catalog) []Status {
	var out []Status
	if w.Quantity > 0 {
		out = append(out, StatusInStock)
	} else {
		out = append(out, StatusDepleted)
	}
	if _, ok := c.OpenBottleFor(w.ID); ok {
		out = append(out, StatusOpen)
	}
	return out
}

// ClosureFor maps a style to its closure.
func ClosureFor(s catalog.Style) Closure {
	switch s {
	case catalog.StyleSparkling, catalog.StyleWhite:
		return ClosureScrewcap
	case catalog.StyleSweet, catalog.StyleFortified:
		return ClosureOther
	}
	return ClosureCork
}

// BottleSizeML returns the bottle size of a wine in millilitres.
func BottleSizeML(catalog.Wine) int {
	return StandardBottleML
}

// ServingHintsFor derives service hints from a style.
func ServingHintsFor(s catalog.Style) []ServingHint {
	var out []ServingHint
	if s == catalog.StyleRed || s == catalog.StyleFortified {
		out = append(out, HintDecant)
	}
	if s == catalog.StyleSparkling || s == catalog.StyleWhite {
		out = append(out, HintServingTemperature)
	}
	return out
}

// Tags returns the metadata tags of a wine. The catalog carries no tag
// data yet, so this is always empty.
func Tags(catalog.Wine) []string {
	return nil
}

// CompletenessFlagsFor lists the data a wine is missing.
func CompletenessFlagsFor(w catalog.Wine) []CompletenessFlag {
	var out []CompletenessFlag
	if strings.TrimSpace(w.Appellation) == "" {
		out = append(out, MissingAppellation)
	}
	if len(w.Grapes) == 0 {
		out = append(out, MissingGrapes)
	}
	if len(w.Locations) == 0 {
		out = append(out, MissingLocation)
	}
	return out
}

// FreshnessOf classifies an open bottle.
func FreshnessOf(b catalog.OpenBottle) Freshness {
	if b.DaysOpen <= FreshnessLimitDays {
		return FreshnessWithinRecommendation
	}
	return FreshnessWarningExceeded
}

// FreshnessFor classifies the open bottle of a wine. ok is false when the
// wine has no open bottle.
func FreshnessFor(w catalog.Wine, c *catalog.Catalog) (Freshness, bool) {
	b, ok := c.OpenBottleFor(w.ID)
	if !ok {
		return "", false
	}
	return FreshnessOf(b), true
}

// isFavouriteStyle marks the styles restocked by the restock preset.
func isFavouriteStyle(s catalog.Style) bool {
	return s == catalog.StyleRed || s == catalog.StyleSparkling
}
