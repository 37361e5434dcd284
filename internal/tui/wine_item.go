package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// WineItem is one row of the browser.
type WineItem struct {
	Wine      catalog.Wine
	Readiness filter.Readiness
	Rating    string
	Open      bool
}

func newWineItem(env filter.Env, w catalog.Wine) WineItem {
	item := WineItem{
		Wine:      w,
		Readiness: filter.ReadinessFor(env.Year, w.DrinkWindow),
	}
	if avg, ok := env.Catalog.AverageRating(w.ID); ok {
		item.Rating = fmt.Sprintf("%.1f★", avg)
	}
	_, item.Open = env.Catalog.OpenBottleFor(w.ID)
	return item
}

// FilterValue feeds the list's own fuzzy filter.
func (i WineItem) FilterValue() string {
	return strings.Join([]string{i.Wine.Producer, i.Wine.Name, i.Wine.SubtitleLine()}, " ")
}

func readinessStyle(r filter.Readiness) string {
	switch r {
	case filter.ReadinessOptimal:
		return StyleReady.Render("●")
	case filter.ReadinessClosing:
		return StyleClosing.Render("●")
	case filter.ReadinessPastPeak:
		return StylePastPeak.Render("●")
	}
	return StyleTooYoung.Render("●")
}

type wineDelegate struct{}

func (wineDelegate) Height() int                               { return 1 }
func (wineDelegate) Spacing() int                              { return 0 }
func (wineDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (wineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	wi, ok := item.(WineItem)
	if !ok {
		return
	}

	title := wi.Wine.Producer + " " + wi.Wine.Name
	meta := StyleMeta.Render(wi.Wine.SubtitleLine())

	var extras []string
	qty := fmt.Sprintf("×%d", wi.Wine.Quantity)
	if wi.Wine.Quantity == 0 {
		qty = StylePastPeak.Render(qty)
	}
	extras = append(extras, qty)
	if wi.Rating != "" {
		extras = append(extras, wi.Rating)
	}
	if wi.Open {
		extras = append(extras, StyleClosing.Render("open"))
	}

	line := fmt.Sprintf("%s %-5s %s  %s  %s", readinessStyle(wi.Readiness), wi.Wine.ID, title, meta,
		StyleHelp.Render(strings.Join(extras, " ")))
	if index == m.Index() {
		line = StyleHighlight.Render("› ") + line
	} else {
		line = "  " + line
	}

	if width := m.Width(); width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	_, _ = fmt.Fprint(w, line)
}
