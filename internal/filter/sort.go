package filter

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
)

// SortOption selects the ordering of the wine list.
type SortOption string

const (
	SortRecentlyAdded      SortOption = "recentlyAdded"
	SortDrinkWindowSoonest SortOption = "drinkWindowSoonest"
	SortRatingHighToLow    SortOption = "ratingHighToLow"
	SortPriceAscending     SortOption = "priceAscending"
	SortPriceDescending    SortOption = "priceDescending"
	SortVintageNewest      SortOption = "vintageNewest"
	SortVintageOldest      SortOption = "vintageOldest"
	SortQuantityHighToLow  SortOption = "quantityHighToLow"
	SortQuantityLowToHigh  SortOption = "quantityLowToHigh"
)

var AllSortOptions = []SortOption{
	SortRecentlyAdded, SortDrinkWindowSoonest, SortRatingHighToLow,
	SortPriceAscending, SortPriceDescending, SortVintageNewest,
	SortVintageOldest, SortQuantityHighToLow, SortQuantityLowToHigh,
}

func (o SortOption) Label() string {
	switch o {
	case SortRecentlyAdded:
		return "Recently added"
	case SortDrinkWindowSoonest:
		return "Drink window"
	case SortRatingHighToLow:
		return "Rating"
	case SortPriceAscending:
		return "Price ↑"
	case SortPriceDescending:
		return "Price ↓"
	case SortVintageNewest:
		return "Newest vintage"
	case SortVintageOldest:
		return "Oldest vintage"
	case SortQuantityHighToLow:
		return "Quantity high"
	case SortQuantityLowToHigh:
		return "Quantity low"
	}
	return string(o)
}

// ParseSortOption matches a raw option name case-insensitively.
func ParseSortOption(raw string) (SortOption, error) {
	return ParseEnum("sort option", raw, AllSortOptions)
}

// Sort returns a sorted copy of wines. The sort is stable: wines that
// compare equal keep their input order.
func Sort(wines []catalog.Wine, option SortOption, c *catalog.Catalog) []catalog.Wine {
	out := make([]catalog.Wine, len(wines))
	copy(out, wines)

	var less func(a, b catalog.Wine) bool
	switch option {
	case SortRecentlyAdded:
		less = func(a, b catalog.Wine) bool { return compareIDs(a.ID, b.ID) > 0 }
	case SortDrinkWindowSoonest:
		less = func(a, b catalog.Wine) bool { return windowStart(a) < windowStart(b) }
	case SortRatingHighToLow:
		rating := func(w catalog.Wine) float64 {
			if avg, ok := c.AverageRating(w.ID); ok {
				return avg
			}
			return -1
		}
		less = func(a, b catalog.Wine) bool {
			ra, rb := rating(a), rating(b)
			if ra == rb {
				return a.Producer < b.Producer
			}
			return ra > rb
		}
	case SortPriceAscending:
		less = func(a, b catalog.Wine) bool { return priceOr(a, math.Inf(1)) < priceOr(b, math.Inf(1)) }
	case SortPriceDescending:
		less = func(a, b catalog.Wine) bool { return priceOr(a, 0) > priceOr(b, 0) }
	case SortVintageNewest:
		less = func(a, b catalog.Wine) bool { return vintageOr(a, math.MinInt) > vintageOr(b, math.MinInt) }
	case SortVintageOldest:
		less = func(a, b catalog.Wine) bool { return vintageOr(a, math.MaxInt) < vintageOr(b, math.MaxInt) }
	case SortQuantityHighToLow:
		less = func(a, b catalog.Wine) bool { return a.Quantity > b.Quantity }
	case SortQuantityLowToHigh:
		less = func(a, b catalog.Wine) bool { return a.Quantity < b.Quantity }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// compareIDs orders integer ids numerically and ranks them above all
// non-integer ids, which compare lexically among themselves.
func compareIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case errA == nil:
		return 1
	case errB == nil:
		return -1
	}
	return strings.Compare(a, b)
}

// windowStart is the window's first year, else its last, else MaxInt.
func windowStart(w catalog.Wine) int {
	if w.DrinkWindow.From != nil {
		return *w.DrinkWindow.From
	}
	if w.DrinkWindow.To != nil {
		return *w.DrinkWindow.To
	}
	return math.MaxInt
}

func priceOr(w catalog.Wine, fallback float64) float64 {
	if w.Price == nil {
		return fallback
	}
	return w.Price.Amount
}

func vintageOr(w catalog.Wine, fallback int) int {
	if w.Vintage == nil {
		return fallback
	}
	return *w.Vintage
}
