package filter

import (
	"strings"
	"time"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
)

// RelativeWindow narrows the drink window relative to the current year.
// Both options work on calendar years, not exact months.
type RelativeWindow string

const (
	ReadyWithinSixMonths     RelativeWindow = "readyWithinSixMonths"
	EndingWithinTwelveMonths RelativeWindow = "endingWithinTwelveMonths"
)

var AllRelativeWindows = []RelativeWindow{ReadyWithinSixMonths, EndingWithinTwelveMonths}

func (r RelativeWindow) Label() string {
	switch r {
	case ReadyWithinSixMonths:
		return "ready within 6 months"
	case EndingWithinTwelveMonths:
		return "ending within 12 months"
	}
	return string(r)
}

// Comparator compares a wine's quantity with a filter value.
type Comparator string

const (
	AtLeast Comparator = "atLeast"
	Equal   Comparator = "equal"
	AtMost  Comparator = "atMost"
)

var AllComparators = []Comparator{AtLeast, Equal, AtMost}

func (c Comparator) Symbol() string {
	switch c {
	case AtLeast:
		return "≥"
	case Equal:
		return "="
	case AtMost:
		return "≤"
	}
	return string(c)
}

// QuantityFilter is a comparator plus a value.
type QuantityFilter struct {
	Comparator Comparator `json:"comparator"`
	Value      int        `json:"value"`
}

// Matches applies the comparator to a quantity.
func (q QuantityFilter) Matches(quantity int) bool {
	switch q.Comparator {
	case AtLeast:
		return quantity >= q.Value
	case Equal:
		return quantity == q.Value
	case AtMost:
		return quantity <= q.Value
	}
	return false
}

// Closure is the bottle closure type.
type Closure string

const (
	ClosureCork     Closure = "cork"
	ClosureScrewcap Closure = "screwcap"
	ClosureOther    Closure = "other"
)

var AllClosures = []Closure{ClosureCork, ClosureScrewcap, ClosureOther}

func (c Closure) Label() string {
	switch c {
	case ClosureCork:
		return "Cork"
	case ClosureScrewcap:
		return "Screwcap"
	case ClosureOther:
		return "Other"
	}
	return string(c)
}

// ServingHint is a service recommendation derived from style.
type ServingHint string

const (
	HintDecant             ServingHint = "decant"
	HintServingTemperature ServingHint = "servingTemperature"
)

var AllServingHints = []ServingHint{HintDecant, HintServingTemperature}

func (h ServingHint) Label() string {
	switch h {
	case HintDecant:
		return "Decant"
	case HintServingTemperature:
		return "Serving temperature"
	}
	return string(h)
}

// CompletenessFlag marks missing catalog data.
type CompletenessFlag string

const (
	MissingAppellation CompletenessFlag = "missingAppellation"
	MissingGrapes      CompletenessFlag = "missingGrapes"
	MissingLocation    CompletenessFlag = "missingLocation"
)

var AllCompletenessFlags = []CompletenessFlag{MissingAppellation, MissingGrapes, MissingLocation}

func (f CompletenessFlag) Label() string {
	switch f {
	case MissingAppellation:
		return "missing appellation"
	case MissingGrapes:
		return "missing grapes"
	case MissingLocation:
		return "missing location"
	}
	return string(f)
}

// Preset is a named composite predicate.
type Preset string

const (
	PresetDrinkReadyToday   Preset = "drinkReadyToday"
	PresetExpiringSoon      Preset = "expiringSoon"
	PresetRestockFavorites  Preset = "restockFavorites"
	PresetUnrated           Preset = "unrated"
	PresetMissingMetadata   Preset = "missingMetadata"
	PresetOpenBottleWarning Preset = "openBottleWarning"
)

var AllPresets = []Preset{
	PresetDrinkReadyToday, PresetExpiringSoon, PresetRestockFavorites,
	PresetUnrated, PresetMissingMetadata, PresetOpenBottleWarning,
}

func (p Preset) Label() string {
	switch p {
	case PresetDrinkReadyToday:
		return "Ready today"
	case PresetExpiringSoon:
		return "Expiring soon"
	case PresetRestockFavorites:
		return "Restock favourites"
	case PresetUnrated:
		return "Unrated"
	case PresetMissingMetadata:
		return "Missing metadata"
	case PresetOpenBottleWarning:
		return "Open bottles past recommendation"
	}
	return string(p)
}

// Freshness classifies an open bottle by days open.
type Freshness string

const (
	FreshnessWithinRecommendation Freshness = "withinRecommendation"
	FreshnessWarningExceeded      Freshness = "warningExceeded"
)

var AllFreshness = []Freshness{FreshnessWithinRecommendation, FreshnessWarningExceeded}

func (f Freshness) Label() string {
	switch f {
	case FreshnessWithinRecommendation:
		return "within recommendation"
	case FreshnessWarningExceeded:
		return "warning exceeded"
	}
	return string(f)
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r IntRange) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Overlaps reports whether [lo, hi] shares at least one point with r.
func (r IntRange) Overlaps(lo, hi int) bool { return lo <= r.Max && hi >= r.Min }

// FloatRange is an inclusive float range.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r FloatRange) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// DateRange is an inclusive date range.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r DateRange) Contains(t time.Time) bool { return !t.Before(r.From) && !t.After(r.To) }

// Advanced is the form-based filter. The zero value imposes no constraint:
// empty slices, nil pointers and empty enum strings are skipped.
//
// ExcludeNV inverts the form's "include NV" toggle so that the zero value
// keeps non-vintage wines.
type Advanced struct {
	Producers   []string        `json:"producers,omitempty"`
	NameQuery   string          `json:"name_query,omitempty"`
	Styles      []catalog.Style `json:"styles,omitempty"`
	Grapes      []string        `json:"grapes,omitempty"`
	ExcludeNV   bool            `json:"exclude_nv,omitempty"`
	Vintage     *IntRange       `json:"vintage,omitempty"`
	ABV         *FloatRange     `json:"abv,omitempty"`
	DrinkWindow *IntRange       `json:"drink_window,omitempty"`
	Relative    RelativeWindow  `json:"relative_drink_window,omitempty"`

	Closures      []Closure     `json:"closures,omitempty"`
	BottleSizes   []int         `json:"bottle_sizes,omitempty"`
	Countries     []string      `json:"countries,omitempty"`
	Regions       []string      `json:"regions,omitempty"`
	Appellations  []string      `json:"appellations,omitempty"`
	QualityLevels []string      `json:"quality_levels,omitempty"`
	VineyardSites []string      `json:"vineyard_sites,omitempty"`
	ServingHints  []ServingHint `json:"serving_hints,omitempty"`

	Quantity  *QuantityFilter `json:"quantity,omitempty"`
	Locations []string        `json:"storage_locations,omitempty"`
	Price     *FloatRange     `json:"price,omitempty"`

	MinRating    *float64                     `json:"min_rating,omitempty"`
	IsRated      *bool                        `json:"is_rated,omitempty"`
	LastTasted   *DateRange                   `json:"last_tasted,omitempty"`
	HasNotes     *bool                        `json:"has_notes,omitempty"`
	OpenDays     *IntRange                    `json:"open_days,omitempty"`
	Preservation []catalog.PreservationMethod `json:"preservation_methods,omitempty"`
	Freshness    []Freshness                  `json:"freshness,omitempty"`

	Tags         []string           `json:"tags,omitempty"`
	Completeness []CompletenessFlag `json:"completeness,omitempty"`
	Preset       Preset             `json:"smart_preset,omitempty"`
}

// ActiveCount counts the fields that differ from the default.
func (a Advanced) ActiveCount() int {
	n := 0
	count := func(active bool) {
		if active {
			n++
		}
	}
	count(len(a.Producers) > 0)
	count(strings.TrimSpace(a.NameQuery) != "")
	count(len(a.Styles) > 0)
	count(len(a.Grapes) > 0)
	count(a.ExcludeNV)
	count(a.Vintage != nil)
	count(a.ABV != nil)
	count(a.DrinkWindow != nil)
	count(a.Relative != "")
	count(len(a.Closures) > 0)
	count(len(a.BottleSizes) > 0)
	count(len(a.Countries) > 0)
	count(len(a.Regions) > 0)
	count(len(a.Appellations) > 0)
	count(len(a.QualityLevels) > 0)
	count(len(a.VineyardSites) > 0)
	count(len(a.ServingHints) > 0)
	count(a.Quantity != nil)
	count(len(a.Locations) > 0)
	count(a.Price != nil)
	count(a.MinRating != nil)
	count(a.IsRated != nil)
	count(a.LastTasted != nil)
	count(a.HasNotes != nil)
	count(a.OpenDays != nil)
	count(len(a.Preservation) > 0)
	count(len(a.Freshness) > 0)
	count(len(a.Tags) > 0)
	count(len(a.Completeness) > 0)
	count(a.Preset != "")
	return n
}

// Reset clears every field.
func (a *Advanced) Reset() {
	*a = Advanced{}
}
