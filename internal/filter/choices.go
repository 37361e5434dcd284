package filter

import (
	"sort"
	"time"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
)

// SuggestedTags are offered by the advanced form until wines carry tags.
var SuggestedTags = []string{"Organic", "Biodynamic", "Natural wine", "Collection", "Gift", "Rarity"}

// BottleSizeChoices are the sizes offered by the advanced form.
var BottleSizeChoices = []int{375, 750, 1500}

// Choices lists the values an advanced-filter form can offer for a catalog.
type Choices struct {
	Producers    []string   `json:"producers"`
	Grapes       []string   `json:"grapes"`
	Countries    []string   `json:"countries"`
	Regions      []string   `json:"regions"`
	Appellations []string   `json:"appellations"`
	Locations    []string   `json:"locations"`
	BottleSizes  []int      `json:"bottle_sizes"`
	Tags         []string   `json:"tags"`
	Vintage      IntRange   `json:"vintage"`
	DrinkWindow  IntRange   `json:"drink_window"`
	Price        FloatRange `json:"price"`
	Tasting      DateRange  `json:"tasting"`
}

// BuildChoices derives the form choices. Bounds fall back to 1980 and the
// current year, prices to 0-500, tasting dates to the last year.
func BuildChoices(env Env, now time.Time) Choices {
	c := env.Catalog
	var producers, grapes, countries, regions, appellations, locations []string
	var vintages, windowYears []int
	var prices []float64
	for _, w := range c.Wines() {
		producers = append(producers, w.Producer)
		grapes = append(grapes, w.Grapes...)
		countries = append(countries, w.Country)
		regions = append(regions, w.Region)
		appellations = append(appellations, w.Appellation)
		locations = append(locations, w.Locations...)
		if w.Vintage != nil {
			vintages = append(vintages, *w.Vintage)
		}
		if w.DrinkWindow.From != nil {
			windowYears = append(windowYears, *w.DrinkWindow.From)
		}
		if w.DrinkWindow.To != nil {
			windowYears = append(windowYears, *w.DrinkWindow.To)
		}
		if w.Price != nil {
			prices = append(prices, w.Price.Amount)
		}
	}

	ch := Choices{
		Producers:    sortedDistinct(producers),
		Grapes:       sortedDistinct(grapes),
		Countries:    sortedDistinct(countries),
		Regions:      sortedDistinct(regions),
		Appellations: sortedDistinct(appellations),
		Locations:    sortedDistinct(locations),
		BottleSizes:  BottleSizeChoices,
		Tags:         SuggestedTags,
		Vintage:      IntRange{Min: 1980, Max: env.Year},
		DrinkWindow:  IntRange{Min: 1980, Max: env.Year},
		Price:        FloatRange{Min: 0, Max: 500},
		Tasting:      DateRange{From: now.AddDate(-1, 0, 0), To: now},
	}
	if len(vintages) > 0 {
		ch.Vintage = IntRange{Min: minOf(vintages), Max: maxOf(vintages)}
	}
	if len(windowYears) > 0 {
		ch.DrinkWindow = IntRange{Min: minOf(windowYears), Max: maxOf(windowYears)}
	}
	if len(prices) > 0 {
		ch.Price = FloatRange{Min: minOf(prices), Max: maxOf(prices)}
	}

	var dates []time.Time
	for _, r := range c.Ratings() {
		if d, err := time.Parse(catalog.DateLayout, r.Date); err == nil {
			dates = append(dates, d)
		}
	}
	if len(dates) > 0 {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		ch.Tasting = DateRange{From: dates[0], To: dates[len(dates)-1]}
	}
	return ch
}

// sortedDistinct drops blanks and duplicates and sorts byte-wise.
func sortedDistinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := []string{}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func minOf[T int | float64](values []T) T {
	m := values[0]
	for _, v := range values[1:] {
		m = min(m, v)
	}
	return m
}

func maxOf[T int | float64](values []T) T {
	m := values[0]
	for _, v := range values[1:] {
		m = max(m, v)
	}
	return m
}
