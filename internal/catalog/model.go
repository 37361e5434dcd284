package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is the wine style vocabulary.
type Style string

const (
	StyleRed       Style = "red"
	StyleWhite     Style = "white"
	StyleRose      Style = "rose"
	StyleSparkling Style = "sparkling"
	StyleSweet     Style = "sweet"
	StyleOrange    Style = "orange"
	StyleFortified Style = "fortified"
)

// AllStyles lists every style in display order.
var AllStyles = []Style{
	StyleRed, StyleWhite, StyleRose, StyleSparkling, StyleSweet, StyleOrange, StyleFortified,
}

// Label returns the display name of the style.
func (s Style) Label() string {
	switch s {
	case StyleRed:
		return "Red"
	case StyleWhite:
		return "White"
	case StyleRose:
		return "Rosé"
	case StyleSparkling:
		return "Sparkling"
	case StyleSweet:
		return "Sweet"
	case StyleOrange:
		return "Orange"
	case StyleFortified:
		return "Fortified"
	}
	return string(s)
}

// ParseStyle maps a raw value to a Style.
func ParseStyle(raw string) (Style, error) {
	for _, s := range AllStyles {
		if strings.EqualFold(string(s), raw) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown style %q", raw)
}

// UnmarshalText rejects styles outside the vocabulary.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// PreservationMethod describes how an open bottle is kept.
type PreservationMethod string

const (
	PreservationCork   PreservationMethod = "cork"
	PreservationVacuum PreservationMethod = "vacuum"
	PreservationArgon  PreservationMethod = "argon"
)

// AllPreservationMethods lists every preservation method.
var AllPreservationMethods = []PreservationMethod{
	PreservationCork, PreservationVacuum, PreservationArgon,
}

func (p PreservationMethod) Label() string {
	switch p {
	case PreservationCork:
		return "Cork"
	case PreservationVacuum:
		return "Vacuum pump"
	case PreservationArgon:
		return "Argon"
	}
	return string(p)
}

// ParsePreservationMethod maps a raw value to a PreservationMethod.
func ParsePreservationMethod(raw string) (PreservationMethod, error) {
	for _, p := range AllPreservationMethods {
		if strings.EqualFold(string(p), raw) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preservation method %q", raw)
}

func (p *PreservationMethod) UnmarshalText(b []byte) error {
	v, err := ParsePreservationMethod(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Price is an amount in a currency.
type Price struct {
	Amount   float64 `json:"amount" yaml:"amount"`
	Currency string  `json:"currency" yaml:"currency"`
}

func (p Price) String() string {
	return fmt.Sprintf("%.2f %s", p.Amount, p.Currency)
}

// DrinkWindow is an inclusive year range. Either bound may be unknown.
type DrinkWindow struct {
	From *int `json:"from,omitempty" yaml:"from,omitempty"`
	To   *int `json:"to,omitempty" yaml:"to,omitempty"`
}

// Label renders the window for display.
func (d DrinkWindow) Label() string {
	switch {
	case d.From != nil && d.To != nil:
		return fmt.Sprintf("%d-%d", *d.From, *d.To)
	case d.From != nil:
		return fmt.Sprintf("from %d", *d.From)
	case d.To != nil:
		return fmt.Sprintf("until %d", *d.To)
	}
	return "n/a"
}

// Wine is one inventory entry. Wines are never mutated after load.
type Wine struct {
	ID          string      `json:"id" yaml:"id"`
	Producer    string      `json:"producer" yaml:"producer"`
	Name        string      `json:"name" yaml:"name"`
	Vintage     *int        `json:"vintage,omitempty" yaml:"vintage,omitempty"`
	Style       Style       `json:"style" yaml:"style"`
	Region      string      `json:"region" yaml:"region"`
	Appellation string      `json:"appellation" yaml:"appellation"`
	Country     string      `json:"country" yaml:"country"`
	Grapes      []string    `json:"grapes" yaml:"grapes"`
	ABV         *float64    `json:"abv,omitempty" yaml:"abv,omitempty"`
	DrinkWindow DrinkWindow `json:"drink_window" yaml:"drink_window"`
	Locations   []string    `json:"locations" yaml:"locations"`
	Quantity    int         `json:"quantity" yaml:"quantity"`
	Price       *Price      `json:"price,omitempty" yaml:"price,omitempty"`
}

// VintageLabel returns the vintage year or "NV".
func (w Wine) VintageLabel() string {
	if w.Vintage == nil {
		return "NV"
	}
	return strconv.Itoa(*w.Vintage)
}

// SubtitleLine joins vintage, region and appellation, skipping blanks.
func (w Wine) SubtitleLine() string {
	parts := []string{w.VintageLabel()}
	for _, p := range []string{w.Region, w.Appellation} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}

// LocationSummary joins the storage locations for display.
func (w Wine) LocationSummary() string {
	if len(w.Locations) == 0 {
		return "no location"
	}
	return strings.Join(w.Locations, ", ")
}

// OpenBottle tracks an uncorked bottle of a wine.
type OpenBottle struct {
	WineID       string             `json:"wine_id" yaml:"wine_id"`
	OpenedAt     string             `json:"opened_at" yaml:"opened_at"`
	Preservation PreservationMethod `json:"preservation" yaml:"preservation"`
	DaysOpen     int                `json:"days_open" yaml:"days_open"`
}

// Rating is one tasting note.
type Rating struct {
	ID     string  `json:"id,omitempty" yaml:"id,omitempty"`
	WineID string  `json:"wine_id" yaml:"wine_id"`
	Stars  float64 `json:"stars" yaml:"stars"`
	Notes  string  `json:"notes" yaml:"notes"`
	Date   string  `json:"date" yaml:"date"`
}

// Document is the on-disk shape of a catalog.
type Document struct {
	Wines       []Wine       `json:"wines" yaml:"wines"`
	OpenBottles []OpenBottle `json:"open_bottles" yaml:"open_bottles"`
	Ratings     []Rating     `json:"ratings" yaml:"ratings"`
}
