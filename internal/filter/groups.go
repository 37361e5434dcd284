package filter

import "github.com/blackwell-systems/cellarctl/internal/catalog"

// Group is one category of quick-filter options.
type Group struct {
	Category Category      `json:"category"`
	Options  []QuickOption `json:"options"`
}

func (g Group) Title() string { return g.Category.Title() }

// BuildGroups enumerates the quick-filter options for a catalog. The
// location group lists the catalog's locations and is left out when there
// are none.
func BuildGroups(c *catalog.Catalog) []Group {
	groups := []Group{
		{Category: CategoryStyle, Options: mapOptions(catalog.AllStyles, StyleOption)},
		{Category: CategoryStatus, Options: mapOptions(AllStatuses, StatusOption)},
		{Category: CategoryReadiness, Options: mapOptions(AllReadiness, ReadinessOption)},
		{Category: CategoryRating, Options: mapOptions(AllRatingBuckets, RatingOption)},
		{Category: CategoryVintage, Options: mapOptions(AllVintageBuckets, VintageOption)},
		{Category: CategoryPrice, Options: mapOptions(AllPriceBuckets, PriceOption)},
	}
	if locations := c.Locations(); len(locations) > 0 {
		groups = append(groups, Group{
			Category: CategoryLocation,
			Options:  mapOptions(locations, LocationOption),
		})
	}
	return groups
}

func mapOptions[T any](values []T, fn func(T) QuickOption) []QuickOption {
	out := make([]QuickOption, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}
