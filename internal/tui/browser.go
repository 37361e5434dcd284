package tui

import (
	"fmt"
	"slices"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// BrowserAction is what the user asked for when leaving the browser.
type BrowserAction string

const (
	ActionNone        BrowserAction = ""
	ActionShowDetails BrowserAction = "details"
	ActionEditFilters BrowserAction = "filters"
)

// BrowserResult holds the outcome of a browser session. Query carries the
// sort and filters as they were when the browser closed.
type BrowserResult struct {
	Action BrowserAction
	Wine   *catalog.Wine
	Query  filter.Query
}

// BrowserModel lists the result of a query and lets the user re-sort it.
type BrowserModel struct {
	env       filter.Env
	query     filter.Query
	list      list.Model
	keys      browserKeys
	action    BrowserAction
	selected  *catalog.Wine
	quitting  bool
	activeCmd string
}

// NewBrowser builds the browser for a query.
func NewBrowser(env filter.Env, query filter.Query) BrowserModel {
	l := list.New(nil, wineDelegate{}, 80, 24)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	keys := newBrowserKeys()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Sort, keys.Filters}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select, keys.Sort, keys.Filters, keys.Reset}
	}

	if query.Sort == "" {
		query.Sort = filter.SortRecentlyAdded
	}
	m := BrowserModel{env: env, query: query, list: l, keys: keys}
	m.refresh()
	return m
}

// refresh recomputes the displayed wines from the query.
func (m *BrowserModel) refresh() {
	result := filter.Apply(m.env, m.query)
	items := make([]list.Item, len(result.Wines))
	for i, w := range result.Wines {
		items[i] = newWineItem(m.env, w)
	}
	m.list.SetItems(items)

	title := fmt.Sprintf("Wines (%d) · %s", len(result.Wines), m.query.Sort.Label())
	if result.ActiveCount > 0 {
		title += fmt.Sprintf(" · %d filters", result.ActiveCount)
	}
	m.list.Title = title
}

// Items returns the wines currently listed.
func (m BrowserModel) Items() []catalog.Wine {
	var out []catalog.Wine
	for _, item := range m.list.Items() {
		if wi, ok := item.(WineItem); ok {
			out = append(out, wi.Wine)
		}
	}
	return out
}

// Query returns the query as currently applied.
func (m BrowserModel) Query() filter.Query { return m.query }

// Result returns the action chosen by the user.
func (m BrowserModel) Result() BrowserResult {
	return BrowserResult{Action: m.action, Wine: m.selected, Query: m.query}
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if item, ok := m.list.SelectedItem().(WineItem); ok {
				m.action = ActionShowDetails
				m.selected = &item.Wine
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Filters):
			m.action = ActionEditFilters
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Sort):
			m.query.Sort = nextSort(m.query.Sort)
			m.refresh()
			m.activeCmd = "s"
			return m, highlightCmd()

		case key.Matches(msg, m.keys.Reset):
			m.query.State.Reset()
			m.query.Search = ""
			m.refresh()
			m.activeCmd = "r"
			return m, highlightCmd()
		}

	case clearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

var browserShortcuts = []shortcutEntry{
	{Key: "enter", Label: "enter details"},
	{Key: "s", Label: "s sort"},
	{Key: "f", Label: "f quick filters"},
	{Key: "r", Label: "r reset"},
	{Key: "q", Label: "q quit"},
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	return renderWithFooter(m.list.View(), browserShortcuts, m.activeCmd)
}

// nextSort cycles through the sort options.
func nextSort(current filter.SortOption) filter.SortOption {
	i := slices.Index(filter.AllSortOptions, current)
	return filter.AllSortOptions[(i+1)%len(filter.AllSortOptions)]
}

// RunBrowser launches the interactive wine browser.
func RunBrowser(env filter.Env, query filter.Query) (*BrowserResult, error) {
	p := tea.NewProgram(NewBrowser(env, query), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running TUI: %w", err)
	}

	if fm, ok := finalModel.(BrowserModel); ok {
		result := fm.Result()
		return &result, nil
	}
	return &BrowserResult{Action: ActionNone, Query: query}, nil
}
