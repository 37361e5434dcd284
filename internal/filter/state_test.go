package filter_test

import (
	"errors"
	"testing"
	"time"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/google/go-cmp/cmp"
)

func TestState_Toggle(t *testing.T) {
	var s filter.State
	red := filter.StyleOption(catalog.StyleRed)

	s.Toggle(red)
	if !s.IsSelected(red) || s.ActiveCount() != 1 {
		t.Fatalf("after first toggle: selected=%v count=%d", s.IsSelected(red), s.ActiveCount())
	}
	s.Toggle(red)
	if s.IsSelected(red) || s.ActiveCount() != 0 {
		t.Fatalf("after second toggle: selected=%v count=%d", s.IsSelected(red), s.ActiveCount())
	}

	s.Select(red)
	s.Select(red)
	if len(s.Quick) != 1 {
		t.Errorf("Select twice kept %d options, want 1", len(s.Quick))
	}
}

func TestState_ActiveCount(t *testing.T) {
	s := filter.State{
		Quick: []filter.QuickOption{
			filter.StyleOption(catalog.StyleRed),
			filter.PriceOption(filter.PriceUpToTwenty),
		},
		Advanced: filter.Advanced{
			ExcludeNV:     true,
			Grapes:        []string{"Riesling"},
			Quantity:      &filter.QuantityFilter{Comparator: filter.AtLeast, Value: 1},
			QualityLevels: []string{"GG"},
			NameQuery:     "   ",
		},
	}
	if got := s.ActiveCount(); got != 6 {
		t.Errorf("ActiveCount = %d, want 6", got)
	}

	s.Reset()
	if got := s.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount after Reset = %d, want 0", got)
	}
}

func TestQuickOption_Identity(t *testing.T) {
	o := filter.LocationOption("Rack A")
	if o.ID() != "location-Rack A" {
		t.Errorf("ID = %q", o.ID())
	}
	if o != filter.LocationOption("Rack A") {
		t.Error("equal options should compare equal")
	}
	if filter.VintageOption(filter.VintageFrom2022On).ID() != "vintage-from2022On" {
		t.Errorf("ID = %q", filter.VintageOption(filter.VintageFrom2022On).ID())
	}
}

func TestParseQuickOption(t *testing.T) {
	cases := []struct {
		raw  string
		want filter.QuickOption
	}{
		{"style:red", filter.StyleOption(catalog.StyleRed)},
		{"STYLE:Sparkling", filter.StyleOption(catalog.StyleSparkling)},
		{"status:open", filter.StatusOption(filter.StatusOpen)},
		{"readiness:pastPeak", filter.ReadinessOption(filter.ReadinessPastPeak)},
		{"rating:unrated", filter.RatingOption(filter.RatingUnrated)},
		{"vintage:nonvintage", filter.VintageOption(filter.VintageNonVintage)},
		{"price:aboveOneHundred", filter.PriceOption(filter.PriceAboveOneHundred)},
		{"location:Rack A", filter.LocationOption("Rack A")},
	}
	for _, c := range cases {
		got, err := filter.ParseQuickOption(c.raw)
		if err != nil {
			t.Errorf("ParseQuickOption(%q): %v", c.raw, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseQuickOption(%q) = %+v, want %+v", c.raw, got, c.want)
		}
		if back, err := filter.ParseQuickOption(got.String()); err != nil || back != got {
			t.Errorf("String() %q does not parse back: %v", got.String(), err)
		}
	}

	for _, raw := range []string{"style", "style:", "style:blue", "colour:red", "price:cheap"} {
		if _, err := filter.ParseQuickOption(raw); !errors.Is(err, filter.ErrUnknownOption) {
			t.Errorf("ParseQuickOption(%q) error = %v, want ErrUnknownOption", raw, err)
		}
	}
}

func TestBuildGroups(t *testing.T) {
	groups := filter.BuildGroups(cellar())

	var categories []filter.Category
	for _, g := range groups {
		categories = append(categories, g.Category)
	}
	if diff := cmp.Diff(filter.Categories, categories); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}

	locations := groups[len(groups)-1]
	var got []string
	for _, o := range locations.Options {
		got = append(got, o.Location)
	}
	if diff := cmp.Diff([]string{"cabinet", "Cellar", "Fridge", "Rack A"}, got); diff != "" {
		t.Errorf("locations (-want +got):\n%s", diff)
	}
	if len(groups[0].Options) != len(catalog.AllStyles) {
		t.Errorf("style group has %d options", len(groups[0].Options))
	}
}

func TestBuildGroups_OmitsLocationsWhenNone(t *testing.T) {
	c := catalog.New(catalog.Document{Wines: []catalog.Wine{{ID: "1", Style: catalog.StyleRed}}})
	groups := filter.BuildGroups(c)
	if len(groups) != 6 {
		t.Fatalf("got %d groups, want 6", len(groups))
	}
	for _, g := range groups {
		if g.Category == filter.CategoryLocation {
			t.Error("location group should be omitted")
		}
	}
}

func TestBuildChoices(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ch := filter.BuildChoices(testEnv(), now)

	if diff := cmp.Diff([]string{"Bollinger", "Hauswein", "Huber", "Moric", "Niepoort", "Wittmann"}, ch.Producers); diff != "" {
		t.Errorf("producers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Breisgau", "Champagne AOC", "Mittelburgenland", "Porto"}, ch.Appellations); diff != "" {
		t.Errorf("appellations (-want +got):\n%s", diff)
	}
	if ch.Vintage != (filter.IntRange{Min: 2016, Max: 2025}) {
		t.Errorf("vintage bounds = %+v", ch.Vintage)
	}
	if ch.DrinkWindow != (filter.IntRange{Min: 2019, Max: 2032}) {
		t.Errorf("drink window bounds = %+v", ch.DrinkWindow)
	}
	if ch.Price != (filter.FloatRange{Min: 20, Max: 150}) {
		t.Errorf("price bounds = %+v", ch.Price)
	}
	wantFrom := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !ch.Tasting.From.Equal(wantFrom) || !ch.Tasting.To.Equal(wantTo) {
		t.Errorf("tasting bounds = %v..%v", ch.Tasting.From, ch.Tasting.To)
	}
}

func TestBuildChoices_Fallbacks(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ch := filter.BuildChoices(filter.Env{Catalog: catalog.Empty(), Year: 2024}, now)

	if ch.Vintage != (filter.IntRange{Min: 1980, Max: 2024}) {
		t.Errorf("vintage fallback = %+v", ch.Vintage)
	}
	if ch.Price != (filter.FloatRange{Min: 0, Max: 500}) {
		t.Errorf("price fallback = %+v", ch.Price)
	}
	if !ch.Tasting.To.Equal(now) || !ch.Tasting.From.Equal(now.AddDate(-1, 0, 0)) {
		t.Errorf("tasting fallback = %v..%v", ch.Tasting.From, ch.Tasting.To)
	}
	if len(ch.Producers) != 0 {
		t.Errorf("producers = %v", ch.Producers)
	}
}

func TestSynonyms(t *testing.T) {
	if diff := cmp.Diff([]string{"pinot gris", "pinot grigio"}, filter.Synonyms(" Grauburgunder ")); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := filter.Synonyms("Riesling"); got != nil {
		t.Errorf("Synonyms(Riesling) = %v, want nil", got)
	}
}

func TestParseEnum(t *testing.T) {
	got, err := filter.ParseEnum("readiness", " PastPeak ", filter.AllReadiness)
	if err != nil || got != filter.ReadinessPastPeak {
		t.Errorf("ParseEnum = %q, %v", got, err)
	}
	if _, err := filter.ParseEnum("readiness", "ripe", filter.AllReadiness); !errors.Is(err, filter.ErrUnknownOption) {
		t.Errorf("err = %v, want ErrUnknownOption", err)
	}
}
