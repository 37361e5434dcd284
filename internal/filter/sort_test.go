package filter_test

import (
	"errors"
	"testing"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/google/go-cmp/cmp"
)

func TestSort(t *testing.T) {
	env := testEnv()
	wines := env.Catalog.Wines()
	cases := []struct {
		option filter.SortOption
		want   []string
	}{
		{filter.SortRecentlyAdded, []string{"6", "5", "4", "3", "2", "1"}},
		{filter.SortDrinkWindowSoonest, []string{"3", "1", "4", "6", "2", "5"}},
		{filter.SortRatingHighToLow, []string{"2", "1", "3", "5", "6", "4"}},
		{filter.SortPriceAscending, []string{"3", "4", "1", "2", "6", "5"}},
		{filter.SortPriceDescending, []string{"6", "2", "1", "4", "3", "5"}},
		{filter.SortVintageNewest, []string{"6", "4", "1", "3", "2", "5"}},
		{filter.SortVintageOldest, []string{"3", "1", "4", "6", "2", "5"}},
		{filter.SortQuantityHighToLow, []string{"5", "1", "4", "2", "6", "3"}},
		{filter.SortQuantityLowToHigh, []string{"3", "6", "2", "4", "1", "5"}},
	}
	for _, c := range cases {
		t.Run(string(c.option), func(t *testing.T) {
			got := filter.Sort(wines, c.option, env.Catalog)
			if diff := cmp.Diff(c.want, wineIDs(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			again := filter.Sort(got, c.option, env.Catalog)
			if diff := cmp.Diff(wineIDs(got), wineIDs(again)); diff != "" {
				t.Errorf("sorting twice changed the order (-first +second):\n%s", diff)
			}
		})
	}
}

func TestSort_MissingValuesGoLast(t *testing.T) {
	a := catalog.Wine{ID: "2", Producer: "A"}
	b := catalog.Wine{ID: "1", Producer: "B", Vintage: intp(2020), Price: price(30)}
	c := catalog.New(catalog.Document{Wines: []catalog.Wine{a, b}})

	for _, option := range []filter.SortOption{filter.SortVintageNewest, filter.SortPriceAscending} {
		got := wineIDs(filter.Sort(c.Wines(), option, c))
		if diff := cmp.Diff([]string{"1", "2"}, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", option, diff)
		}
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	env := testEnv()
	wines := env.Catalog.Wines()
	before := wineIDs(wines)
	filter.Sort(wines, filter.SortRecentlyAdded, env.Catalog)
	if diff := cmp.Diff(before, wineIDs(wines)); diff != "" {
		t.Errorf("input reordered (-want +got):\n%s", diff)
	}
}

func TestSort_RecentlyAddedComparesNumericIDs(t *testing.T) {
	c := catalog.New(catalog.Document{Wines: []catalog.Wine{{ID: "9"}, {ID: "10"}, {ID: "2"}}})
	got := wineIDs(filter.Sort(c.Wines(), filter.SortRecentlyAdded, c))
	if diff := cmp.Diff([]string{"10", "9", "2"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSort_RecentlyAddedMixedIDsIsTotal(t *testing.T) {
	want := []string{"10", "9", "2", "b", "1a"}
	perms := [][]string{
		{"10", "9", "1a", "2", "b"},
		{"10", "1a", "9", "b", "2"},
		{"9", "1a", "10", "2", "b"},
		{"1a", "b", "2", "9", "10"},
		{"b", "2", "1a", "10", "9"},
		{"2", "10", "b", "9", "1a"},
	}
	for _, perm := range perms {
		var wines []catalog.Wine
		for _, id := range perm {
			wines = append(wines, catalog.Wine{ID: id})
		}
		c := catalog.New(catalog.Document{Wines: wines})
		got := wineIDs(filter.Sort(c.Wines(), filter.SortRecentlyAdded, c))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("input %v (-want +got):\n%s", perm, diff)
		}
	}
}

func TestSort_StableForEqualKeys(t *testing.T) {
	c := catalog.New(catalog.Document{Wines: []catalog.Wine{
		{ID: "a", Quantity: 1}, {ID: "b", Quantity: 1}, {ID: "c", Quantity: 1},
	}})
	got := wineIDs(filter.Sort(c.Wines(), filter.SortQuantityHighToLow, c))
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseSortOption(t *testing.T) {
	got, err := filter.ParseSortOption("PriceAscending")
	if err != nil {
		t.Fatalf("ParseSortOption: %v", err)
	}
	if got != filter.SortPriceAscending {
		t.Errorf("got %q, want %q", got, filter.SortPriceAscending)
	}
	if _, err := filter.ParseSortOption("alphabetical"); !errors.Is(err, filter.ErrUnknownOption) {
		t.Errorf("expected ErrUnknownOption, got %v", err)
	}
}

func TestApply(t *testing.T) {
	env := testEnv()
	q := filter.Query{
		State: filter.State{Quick: []filter.QuickOption{filter.StyleOption(catalog.StyleRed)}},
		Sort:  filter.SortPriceDescending,
	}
	res := filter.Apply(env, q)
	if diff := cmp.Diff([]string{"1", "3", "5"}, wineIDs(res.Wines)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if res.ActiveCount != 1 {
		t.Errorf("ActiveCount = %d, want 1", res.ActiveCount)
	}
}

func TestFilter_NoMatchesIsEmptyNotNil(t *testing.T) {
	got := filter.Filter(testEnv(), "zzz", filter.State{})
	if got == nil || len(got) != 0 {
		t.Errorf("Filter = %#v, want empty slice", got)
	}
}
