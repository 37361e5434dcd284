package filter_test

import (
	"testing"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
)

const testYear = 2024

func intp(v int) *int                { return &v }
func floatp(v float64) *float64      { return &v }
func boolp(v bool) *bool             { return &v }
func price(v float64) *catalog.Price { return &catalog.Price{Amount: v, Currency: "EUR"} }

func window(from, to *int) catalog.DrinkWindow {
	return catalog.DrinkWindow{From: from, To: to}
}

// cellar is a small catalog covering the edge cases: NV wines, missing
// prices, open bottles, unparseable rating dates and missing metadata.
func cellar() *catalog.Catalog {
	return catalog.New(catalog.Document{
		Wines: []catalog.Wine{
			{
				ID: "1", Producer: "Huber", Name: "Malterdinger", Vintage: intp(2019),
				Style: catalog.StyleRed, Region: "Baden", Appellation: "Breisgau", Country: "Germany",
				Grapes: []string{"Spätburgunder"}, ABV: floatp(13),
				DrinkWindow: window(intp(2023), intp(2032)),
				Locations:   []string{"Rack A"}, Quantity: 4, Price: price(32),
			},
			{
				ID: "2", Producer: "Bollinger", Name: "Special Cuvée",
				Style: catalog.StyleSparkling, Region: "Champagne", Appellation: "Champagne AOC", Country: "France",
				Grapes: []string{"Pinot Noir", "Chardonnay"}, ABV: floatp(12),
				Locations: []string{"Fridge"}, Quantity: 2, Price: price(69),
			},
			{
				ID: "3", Producer: "Moric", Name: "Blaufränkisch Reserve", Vintage: intp(2016),
				Style: catalog.StyleRed, Region: "Burgenland", Appellation: "Mittelburgenland", Country: "Austria",
				Grapes: []string{"Lemberger"},
				DrinkWindow: window(intp(2019), intp(2024)),
				Locations:   []string{"Rack A", "Cellar"}, Quantity: 0, Price: price(20),
			},
			{
				ID: "4", Producer: "Wittmann", Name: "Weißburgunder", Vintage: intp(2022),
				Style: catalog.StyleWhite, Region: "Rheinhessen", Appellation: "", Country: "Germany",
				Grapes:      []string{"Weißburgunder"},
				DrinkWindow: window(nil, intp(2023)),
				Locations:   nil, Quantity: 3, Price: price(20.01),
			},
			{
				ID: "5", Producer: "Hauswein", Name: "Landwein",
				Style: catalog.StyleRed, Region: "Pfalz", Country: "Germany",
				Quantity: 12,
			},
			{
				ID: "6", Producer: "Niepoort", Name: "Tawny", Vintage: intp(2025),
				Style: catalog.StyleFortified, Region: "Douro", Appellation: "Porto", Country: "Portugal",
				Grapes:      []string{"Touriga Nacional"},
				DrinkWindow: window(intp(2026), nil),
				Locations:   []string{"cabinet"}, Quantity: 1, Price: price(150),
			},
		},
		OpenBottles: []catalog.OpenBottle{
			{WineID: "1", OpenedAt: "2024-03-01", Preservation: catalog.PreservationVacuum, DaysOpen: 2},
			{WineID: "6", OpenedAt: "2024-01-20", Preservation: catalog.PreservationCork, DaysOpen: 41},
		},
		Ratings: []catalog.Rating{
			{WineID: "1", Stars: 4.5, Notes: "cherry", Date: "2024-02-01"},
			{WineID: "1", Stars: 4.0, Notes: "", Date: "2024-03-01"},
			{WineID: "2", Stars: 5, Notes: "  ", Date: "2023-12-31"},
			{WineID: "3", Stars: 3.5, Notes: "", Date: "someday"},
		},
	})
}

func testEnv() filter.Env {
	return filter.Env{Catalog: cellar(), Year: testYear}
}

// ids runs the facade without sorting and returns the matching ids.
func ids(t *testing.T, env filter.Env, search string, state filter.State) []string {
	t.Helper()
	var out []string
	for _, w := range filter.Filter(env, search, state) {
		out = append(out, w.ID)
	}
	return out
}

func wineIDs(wines []catalog.Wine) []string {
	out := make([]string, len(wines))
	for i, w := range wines {
		out[i] = w.ID
	}
	return out
}
