package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
)

// ErrUnknownOption is returned when a filter or sort value is not part of
// its vocabulary.
var ErrUnknownOption = errors.New("unknown option")

// Category groups quick-filter options. Options in the same category are
// OR-combined, categories are AND-combined.
type Category string

const (
	CategoryStyle     Category = "style"
	CategoryStatus    Category = "status"
	CategoryReadiness Category = "readiness"
	CategoryRating    Category = "rating"
	CategoryVintage   Category = "vintage"
	CategoryPrice     Category = "price"
	CategoryLocation  Category = "location"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryStyle, CategoryStatus, CategoryReadiness, CategoryRating,
	CategoryVintage, CategoryPrice, CategoryLocation,
}

func (c Category) Title() string {
	switch c {
	case CategoryStyle:
		return "Style"
	case CategoryStatus:
		return "Status"
	case CategoryReadiness:
		return "Drink readiness"
	case CategoryRating:
		return "Rating"
	case CategoryVintage:
		return "Vintage"
	case CategoryPrice:
		return "Price"
	case CategoryLocation:
		return "Location"
	}
	return string(c)
}

// Status is an inventory status derived from quantity and open bottles.
type Status string

const (
	StatusInStock  Status = "inStock"
	StatusOpen     Status = "open"
	StatusDepleted Status = "depleted"
)

var AllStatuses = []Status{StatusInStock, StatusOpen, StatusDepleted}

func (s Status) Label() string {
	switch s {
	case StatusInStock:
		return "In stock"
	case StatusOpen:
		return "Open"
	case StatusDepleted:
		return "Depleted"
	}
	return string(s)
}

// Readiness classifies a wine against its drink window.
type Readiness string

const (
	ReadinessTooYoung Readiness = "tooYoung"
	ReadinessOptimal  Readiness = "optimal"
	ReadinessClosing  Readiness = "closing"
	ReadinessPastPeak Readiness = "pastPeak"
)

var AllReadiness = []Readiness{ReadinessTooYoung, ReadinessOptimal, ReadinessClosing, ReadinessPastPeak}

func (r Readiness) Label() string {
	switch r {
	case ReadinessTooYoung:
		return "Too young"
	case ReadinessOptimal:
		return "Ready"
	case ReadinessClosing:
		return "Closing"
	case ReadinessPastPeak:
		return "Past peak"
	}
	return string(r)
}

// RatingBucket is a quick rating threshold.
type RatingBucket string

const (
	RatingMinimumFour          RatingBucket = "minimumFour"
	RatingMinimumFourPointFive RatingBucket = "minimumFourPointFive"
	RatingUnrated              RatingBucket = "unrated"
)

var AllRatingBuckets = []RatingBucket{RatingMinimumFour, RatingMinimumFourPointFive, RatingUnrated}

func (r RatingBucket) Label() string {
	switch r {
	case RatingMinimumFour:
		return "≥4★"
	case RatingMinimumFourPointFive:
		return "≥4.5★"
	case RatingUnrated:
		return "Unrated"
	}
	return string(r)
}

// VintageBucket groups vintages into fixed year ranges.
type VintageBucket string

const (
	VintageNonVintage     VintageBucket = "nonVintage"
	VintageFrom2015To2018 VintageBucket = "from2015To2018"
	VintageFrom2019To2021 VintageBucket = "from2019To2021"
	VintageFrom2022On     VintageBucket = "from2022On"
)

var AllVintageBuckets = []VintageBucket{
	VintageNonVintage, VintageFrom2015To2018, VintageFrom2019To2021, VintageFrom2022On,
}

func (v VintageBucket) Label() string {
	switch v {
	case VintageNonVintage:
		return "NV"
	case VintageFrom2015To2018:
		return "2015–2018"
	case VintageFrom2019To2021:
		return "2019–2021"
	case VintageFrom2022On:
		return "2022+"
	}
	return string(v)
}

// Contains reports whether a vintage (nil = non-vintage) falls in the bucket.
func (v VintageBucket) Contains(vintage *int) bool {
	if v == VintageNonVintage {
		return vintage == nil
	}
	if vintage == nil {
		return false
	}
	y := *vintage
	switch v {
	case VintageFrom2015To2018:
		return y >= 2015 && y <= 2018
	case VintageFrom2019To2021:
		return y >= 2019 && y <= 2021
	case VintageFrom2022On:
		return y >= 2022
	}
	return false
}

// PriceBucket groups prices into fixed bands.
type PriceBucket string

const (
	PriceUpToTwenty        PriceBucket = "upToTwenty"
	PriceTwentyToFifty     PriceBucket = "twentyToFifty"
	PriceFiftyToOneHundred PriceBucket = "fiftyToOneHundred"
	PriceAboveOneHundred   PriceBucket = "aboveOneHundred"
)

var AllPriceBuckets = []PriceBucket{
	PriceUpToTwenty, PriceTwentyToFifty, PriceFiftyToOneHundred, PriceAboveOneHundred,
}

func (p PriceBucket) Label() string {
	switch p {
	case PriceUpToTwenty:
		return "≤20"
	case PriceTwentyToFifty:
		return "20–50"
	case PriceFiftyToOneHundred:
		return "50–100"
	case PriceAboveOneHundred:
		return ">100"
	}
	return string(p)
}

// Contains reports whether a price falls in the band. A missing price
// never matches.
func (p PriceBucket) Contains(price *catalog.Price) bool {
	if price == nil {
		return false
	}
	a := price.Amount
	switch p {
	case PriceUpToTwenty:
		return a <= 20
	case PriceTwentyToFifty:
		return a > 20 && a <= 50
	case PriceFiftyToOneHundred:
		return a > 50 && a <= 100
	case PriceAboveOneHundred:
		return a > 100
	}
	return false
}

// QuickOption is a single selectable quick filter. Category says which
// payload field is meaningful; the others stay zero. The struct is
// comparable, so equal options compare equal.
type QuickOption struct {
	Category  Category      `json:"category"`
	Style     catalog.Style `json:"style,omitempty"`
	Status    Status        `json:"status,omitempty"`
	Readiness Readiness     `json:"readiness,omitempty"`
	Rating    RatingBucket  `json:"rating,omitempty"`
	Vintage   VintageBucket `json:"vintage,omitempty"`
	Price     PriceBucket   `json:"price,omitempty"`
	Location  string        `json:"location,omitempty"`
}

func StyleOption(s catalog.Style) QuickOption {
	return QuickOption{Category: CategoryStyle, Style: s}
}

func StatusOption(s Status) QuickOption {
	return QuickOption{Category: CategoryStatus, Status: s}
}

func ReadinessOption(r Readiness) QuickOption {
	return QuickOption{Category: CategoryReadiness, Readiness: r}
}

func RatingOption(r RatingBucket) QuickOption {
	return QuickOption{Category: CategoryRating, Rating: r}
}

func VintageOption(v VintageBucket) QuickOption {
	return QuickOption{Category: CategoryVintage, Vintage: v}
}

func PriceOption(p PriceBucket) QuickOption {
	return QuickOption{Category: CategoryPrice, Price: p}
}

func LocationOption(location string) QuickOption {
	return QuickOption{Category: CategoryLocation, Location: location}
}

// Value returns the raw payload.
func (o QuickOption) Value() string {
	switch o.Category {
	case CategoryStyle:
		return string(o.Style)
	case CategoryStatus:
		return string(o.Status)
	case CategoryReadiness:
		return string(o.Readiness)
	case CategoryRating:
		return string(o.Rating)
	case CategoryVintage:
		return string(o.Vintage)
	case CategoryPrice:
		return string(o.Price)
	case CategoryLocation:
		return o.Location
	}
	return ""
}

// ID is a stable identifier such as "style-red".
func (o QuickOption) ID() string {
	return string(o.Category) + "-" + o.Value()
}

// String renders the option in the "category:value" syntax accepted by
// ParseQuickOption.
func (o QuickOption) String() string {
	return string(o.Category) + ":" + o.Value()
}

func (o QuickOption) Label() string {
	switch o.Category {
	case CategoryStyle:
		return o.Style.Label()
	case CategoryStatus:
		return o.Status.Label()
	case CategoryReadiness:
		return o.Readiness.Label()
	case CategoryRating:
		return o.Rating.Label()
	case CategoryVintage:
		return o.Vintage.Label()
	case CategoryPrice:
		return o.Price.Label()
	case CategoryLocation:
		return o.Location
	}
	return o.Value()
}

// ParseQuickOption parses "category:value", e.g. "style:red" or
// "location:Rack A". Enumerated values match case-insensitively;
// locations are taken verbatim.
func ParseQuickOption(raw string) (QuickOption, error) {
	cat, value, ok := strings.Cut(raw, ":")
	if !ok || strings.TrimSpace(value) == "" {
		return QuickOption{}, fmt.Errorf("%w: quick filter %q, want category:value", ErrUnknownOption, raw)
	}
	switch Category(strings.ToLower(strings.TrimSpace(cat))) {
	case CategoryStyle:
		s, err := catalog.ParseStyle(value)
		if err != nil {
			return QuickOption{}, fmt.Errorf("%w: %v", ErrUnknownOption, err)
		}
		return StyleOption(s), nil
	case CategoryStatus:
		v, err := ParseEnum("status", value, AllStatuses)
		return StatusOption(v), err
	case CategoryReadiness:
		v, err := ParseEnum("readiness", value, AllReadiness)
		return ReadinessOption(v), err
	case CategoryRating:
		v, err := ParseEnum("rating", value, AllRatingBuckets)
		return RatingOption(v), err
	case CategoryVintage:
		v, err := ParseEnum("vintage bucket", value, AllVintageBuckets)
		return VintageOption(v), err
	case CategoryPrice:
		v, err := ParseEnum("price bucket", value, AllPriceBuckets)
		return PriceOption(v), err
	case CategoryLocation:
		return LocationOption(value), nil
	}
	return QuickOption{}, fmt.Errorf("%w: quick filter category %q", ErrUnknownOption, cat)
}

// ParseEnum matches raw case-insensitively against a closed vocabulary.
func ParseEnum[T ~string](kind, raw string, all []T) (T, error) {
	raw = strings.TrimSpace(raw)
	for _, v := range all {
		if strings.EqualFold(string(v), raw) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownOption, kind, raw)
}
