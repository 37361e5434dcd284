package tui_test

import (
	"testing"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/blackwell-systems/cellarctl/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func year(v int) *int { return &v }

func testEnv() filter.Env {
	c := catalog.New(catalog.Document{
		Wines: []catalog.Wine{
			{ID: "1", Producer: "Huber", Name: "Spätburgunder", Style: catalog.StyleRed, Vintage: year(2019), Quantity: 2, Locations: []string{"Rack A"}},
			{ID: "2", Producer: "Dönnhoff", Name: "Riesling", Style: catalog.StyleWhite, Vintage: year(2021), Quantity: 6},
			{ID: "3", Producer: "Moric", Name: "Blaufränkisch", Style: catalog.StyleRed, Vintage: year(2016), Quantity: 1},
		},
	})
	return filter.Env{Catalog: c, Year: 2024}
}

func ids(wines []catalog.Wine) []string {
	var out []string
	for _, w := range wines {
		out = append(out, w.ID)
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestBrowser_SortCycles(t *testing.T) {
	m := tui.NewBrowser(testEnv(), filter.Query{Sort: filter.SortRecentlyAdded})
	if diff := cmp.Diff([]string{"3", "2", "1"}, ids(m.Items())); diff != "" {
		t.Fatalf("initial order (-want +got):\n%s", diff)
	}

	got := update(t, m, keyRunes("s")).(tui.BrowserModel)
	if got.Query().Sort != filter.SortDrinkWindowSoonest {
		t.Errorf("sort after one press = %q", got.Query().Sort)
	}

	got = update(t, got, keyRunes("s"), keyRunes("s"), keyRunes("s"), keyRunes("s")).(tui.BrowserModel)
	if got.Query().Sort != filter.SortVintageNewest {
		t.Fatalf("sort after five presses = %q", got.Query().Sort)
	}
	if diff := cmp.Diff([]string{"2", "1", "3"}, ids(got.Items())); diff != "" {
		t.Errorf("vintage order (-want +got):\n%s", diff)
	}
}

func TestBrowser_EnterSelectsWine(t *testing.T) {
	m := tui.NewBrowser(testEnv(), filter.Query{Sort: filter.SortRecentlyAdded})
	got := update(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}).(tui.BrowserModel)

	res := got.Result()
	if res.Action != tui.ActionShowDetails {
		t.Fatalf("action = %q, want details", res.Action)
	}
	if res.Wine == nil || res.Wine.ID != "2" {
		t.Errorf("selected = %+v, want wine 2", res.Wine)
	}
}

func TestBrowser_FiltersAndReset(t *testing.T) {
	q := filter.Query{
		Sort:  filter.SortRecentlyAdded,
		State: filter.State{Quick: []filter.QuickOption{filter.StyleOption(catalog.StyleRed)}},
	}
	m := tui.NewBrowser(testEnv(), q)
	if diff := cmp.Diff([]string{"3", "1"}, ids(m.Items())); diff != "" {
		t.Fatalf("filtered (-want +got):\n%s", diff)
	}

	reset := update(t, m, keyRunes("r")).(tui.BrowserModel)
	if n := len(reset.Items()); n != 3 {
		t.Errorf("after reset %d wines, want 3", n)
	}
	if reset.Query().State.ActiveCount() != 0 {
		t.Error("reset should clear the filter state")
	}

	edit := update(t, m, keyRunes("f")).(tui.BrowserModel)
	if edit.Result().Action != tui.ActionEditFilters {
		t.Errorf("action = %q, want filters", edit.Result().Action)
	}
}

func TestQuickPicker_Toggle(t *testing.T) {
	env := testEnv()
	groups := filter.BuildGroups(env.Catalog)
	red := filter.StyleOption(catalog.StyleRed)
	white := filter.StyleOption(catalog.StyleWhite)

	m := tui.NewQuickPicker(groups, []filter.QuickOption{red})
	if diff := cmp.Diff([]filter.QuickOption{red}, m.Selected()); diff != "" {
		t.Fatalf("initial selection (-want +got):\n%s", diff)
	}

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	down := tea.KeyMsg{Type: tea.KeyDown}
	// Row 0 is the style heading, rows 1 and 2 are red and white.
	got := update(t, m, space, down, space, down, space, tea.KeyMsg{Type: tea.KeyEnter}).(tui.PickerModel)

	if !got.Confirmed() {
		t.Fatal("enter should confirm the picker")
	}
	if diff := cmp.Diff([]filter.QuickOption{white}, got.Selected()); diff != "" {
		t.Errorf("selection (-want +got):\n%s", diff)
	}
}

func TestQuickPicker_QuitCancels(t *testing.T) {
	m := tui.NewQuickPicker(filter.BuildGroups(testEnv().Catalog), nil)
	got := update(t, m, tea.KeyMsg{Type: tea.KeyEsc}).(tui.PickerModel)
	if got.Confirmed() {
		t.Error("esc should not confirm")
	}
}
