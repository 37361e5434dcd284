package app

import (
	"strings"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/spf13/pflag"
)

// queryFlags collects the search text, quick filters, advanced filters and
// sort order shared by list, browse and export.
type queryFlags struct {
	quick    []filter.QuickOption
	advanced filter.Advanced
	sort     filter.SortOption
}

func (q *queryFlags) register(fs *pflag.FlagSet) {
	a := &q.advanced

	fs.Var(quickValue{&q.quick}, "quick", "Quick filter category:value (repeatable), e.g. style:red")
	fs.Var(enumValue[filter.SortOption]{&q.sort, filter.ParseSortOption, "sort"}, "sort",
		"Sort order: "+joinEnum(filter.AllSortOptions))

	fs.StringArrayVar(&a.Producers, "producer", nil, "Producer (repeatable)")
	fs.StringVar(&a.NameQuery, "name", "", "Substring of wine name or producer")
	fs.Var(enumSliceValue[catalog.Style]{&a.Styles, catalog.ParseStyle, "style"}, "style",
		"Style: "+joinEnum(catalog.AllStyles))
	fs.StringArrayVar(&a.Grapes, "grape", nil, "Grape variety, synonyms included (repeatable)")
	fs.BoolVar(&a.ExcludeNV, "exclude-nv", false, "Leave out non-vintage wines")
	fs.Var(intRangeValue{&a.Vintage}, "vintage", "Vintage years, e.g. 2015..2019")
	fs.Var(floatRangeValue{&a.ABV}, "abv", "Alcohol by volume, e.g. 12..13.5")
	fs.Var(intRangeValue{&a.DrinkWindow}, "drink-window", "Years the drink window must overlap")
	fs.Var(enumValue[filter.RelativeWindow]{&a.Relative, enumParser("relative window", filter.AllRelativeWindows), "window"},
		"relative", "Relative drink window: "+joinEnum(filter.AllRelativeWindows))
	fs.Var(enumSliceValue[filter.Closure]{&a.Closures, enumParser("closure", filter.AllClosures), "closure"},
		"closure", "Closure: "+joinEnum(filter.AllClosures))
	fs.IntSliceVar(&a.BottleSizes, "bottle-size", nil, "Bottle size in ml")
	fs.StringArrayVar(&a.Countries, "country", nil, "Country (repeatable)")
	fs.StringArrayVar(&a.Regions, "region", nil, "Region (repeatable)")
	fs.StringArrayVar(&a.Appellations, "appellation", nil, "Appellation (repeatable)")
	fs.StringArrayVar(&a.QualityLevels, "quality-level", nil, "Quality level (repeatable)")
	fs.StringArrayVar(&a.VineyardSites, "vineyard-site", nil, "Vineyard site (repeatable)")
	fs.Var(enumSliceValue[filter.ServingHint]{&a.ServingHints, enumParser("serving hint", filter.AllServingHints), "hint"},
		"hint", "Serving hint: "+joinEnum(filter.AllServingHints))
	fs.Var(quantityValue{&a.Quantity}, "quantity", "Bottle count, e.g. >=3, =2 or <=2")
	fs.StringArrayVar(&a.Locations, "location", nil, "Storage location (repeatable)")
	fs.Var(floatRangeValue{&a.Price}, "price", "Price range, e.g. 20..50")
	fs.Var(floatPtrValue{&a.MinRating}, "min-rating", "Minimum average rating")
	fs.Var(triBoolValue{&a.IsRated}, "rated", "Only rated (yes) or unrated (no) wines")
	fs.Var(dateRangeValue{&a.LastTasted}, "tasted", "Last tasting date range, e.g. 2024-01-01..2024-12-31")
	fs.Var(triBoolValue{&a.HasNotes}, "has-notes", "Only wines with (yes) or without (no) tasting notes")
	fs.Var(intRangeValue{&a.OpenDays}, "open-days", "Days the open bottle has been open, e.g. 0..3")
	fs.Var(enumSliceValue[catalog.PreservationMethod]{&a.Preservation, catalog.ParsePreservationMethod, "method"},
		"preservation", "Open bottle preservation: "+joinEnum(catalog.AllPreservationMethods))
	fs.Var(enumSliceValue[filter.Freshness]{&a.Freshness, enumParser("freshness", filter.AllFreshness), "freshness"},
		"freshness", "Open bottle freshness: "+joinEnum(filter.AllFreshness))
	fs.StringArrayVar(&a.Tags, "tag", nil, "Tag (repeatable)")
	fs.Var(enumSliceValue[filter.CompletenessFlag]{&a.Completeness, enumParser("completeness flag", filter.AllCompletenessFlags), "flag"},
		"missing", "Missing data, all must apply: "+joinEnum(filter.AllCompletenessFlags))
	fs.Var(enumValue[filter.Preset]{&a.Preset, enumParser("preset", filter.AllPresets), "preset"},
		"preset", "Smart preset: "+joinEnum(filter.AllPresets))
}

// build turns the parsed flags and positional search words into a query.
func (q *queryFlags) build(args []string) filter.Query {
	sortOption := q.sort
	if sortOption == "" {
		sortOption = cfg.SortOption()
	}
	return filter.Query{
		Search: strings.Join(args, " "),
		State:  filter.State{Quick: q.quick, Advanced: q.advanced},
		Sort:   sortOption,
	}
}

func joinEnum[T ~string](all []T) string {
	parts := make([]string, len(all))
	for i, v := range all {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
