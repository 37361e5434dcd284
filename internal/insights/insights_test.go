package insights_test

import (
	"testing"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/blackwell-systems/cellarctl/internal/insights"
	"github.com/google/go-cmp/cmp"
)

func year(v int) *int { return &v }

func TestSummarize(t *testing.T) {
	c := catalog.New(catalog.Document{
		Wines: []catalog.Wine{
			{ID: "1", Quantity: 3, DrinkWindow: catalog.DrinkWindow{From: year(2020)}},
			{ID: "2", Quantity: 0, DrinkWindow: catalog.DrinkWindow{To: year(2024)}},
			{ID: "3", Quantity: 2, DrinkWindow: catalog.DrinkWindow{From: year(2030)}},
		},
		OpenBottles: []catalog.OpenBottle{
			{WineID: "1", DaysOpen: 1, Preservation: catalog.PreservationCork},
			{WineID: "3", DaysOpen: 4, Preservation: catalog.PreservationArgon},
		},
		Ratings: []catalog.Rating{
			{WineID: "1", Stars: 4.5},
			{WineID: "1", Stars: 5},
			{WineID: "2", Stars: 4},
		},
	})

	got := insights.Summarize(filter.Env{Catalog: c, Year: 2024})
	want := insights.Summary{
		Wines:             3,
		Bottles:           5,
		DrinkReady:        1,
		SoonDue:           1,
		TopRatings:        2,
		OpenBottles:       2,
		OpenPastFreshness: 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := insights.Summarize(filter.Env{Catalog: catalog.Empty(), Year: 2024})
	if got != (insights.Summary{}) {
		t.Errorf("Summarize(empty) = %+v, want zero", got)
	}
}
