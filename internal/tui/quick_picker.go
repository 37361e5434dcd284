package tui

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/blackwell-systems/cellarctl/internal/tui/multiselect"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// quickItem is one quick-filter option, or a group heading when heading
// is set.
type quickItem struct {
	option   filter.QuickOption
	group    string
	heading  bool
	selected bool
}

func (i *quickItem) FilterValue() string {
	if i.heading {
		return i.group
	}
	return i.group + " " + i.option.Label()
}

func (i *quickItem) Key() string {
	if i.heading {
		return "group-" + i.group
	}
	return i.option.ID()
}

func (i *quickItem) IsSelected() bool   { return i.selected }
func (i *quickItem) SetSelected(v bool) { i.selected = v }
func (i *quickItem) IsSelectable() bool { return !i.heading }

type quickDelegate struct {
	ms *multiselect.Model
}

func (quickDelegate) Height() int                               { return 1 }
func (quickDelegate) Spacing() int                              { return 0 }
func (quickDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d quickDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	qi, ok := item.(*quickItem)
	if !ok {
		return
	}
	var line string
	if qi.heading {
		line = StyleHeader.Render(qi.group)
	} else {
		line = d.ms.CheckboxPrefix(qi) + qi.option.Label()
	}
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

// PickerModel selects quick filters across all groups.
type PickerModel struct {
	ms        *multiselect.Model
	keys      StandardKeys
	confirmed bool
	quitting  bool
}

// NewQuickPicker lists the groups with the current selection checked.
func NewQuickPicker(groups []filter.Group, current []filter.QuickOption) PickerModel {
	selected := make(map[filter.QuickOption]bool, len(current))
	for _, o := range current {
		selected[o] = true
	}

	var items []list.Item
	for _, g := range groups {
		items = append(items, &quickItem{group: g.Title(), heading: true})
		for _, o := range g.Options {
			items = append(items, &quickItem{option: o, group: g.Title(), selected: selected[o]})
		}
	}

	ms := &multiselect.Model{}
	l := list.New(items, quickDelegate{ms: ms}, 60, 24)
	l.Title = "Quick filters"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.HelpStyle = StyleHelp

	keys := NewStandardKeys()
	keys.Select.SetHelp("enter", "apply")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Select}
	}

	*ms = multiselect.New(l)
	return PickerModel{ms: ms, keys: keys}
}

// Selected returns the checked options in group order.
func (m PickerModel) Selected() []filter.QuickOption {
	var out []filter.QuickOption
	for _, item := range m.ms.SelectedItems() {
		if qi, ok := item.(*quickItem); ok {
			out = append(out, qi.option)
		}
	}
	return out
}

// Confirmed reports whether the picker was closed with enter.
func (m PickerModel) Confirmed() bool { return m.confirmed }

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ms.List.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.ms.Toggle()
			return m, nil
		}

	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.ms.List.SetSize(msg.Width-h, msg.Height-v)
	}

	updated, cmd := m.ms.Update(msg)
	*m.ms = updated
	return m, cmd
}

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	return StyleBorder.Render(m.ms.View())
}

// RunQuickPicker lets the user check quick filters. ok is false when the
// picker was cancelled, in which case the current selection should stay.
func RunQuickPicker(groups []filter.Group, current []filter.QuickOption) (selected []filter.QuickOption, ok bool, err error) {
	p := tea.NewProgram(NewQuickPicker(groups, current), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("running TUI: %w", err)
	}
	fm, isPicker := finalModel.(PickerModel)
	if !isPicker || !fm.Confirmed() {
		return current, false, nil
	}
	return fm.Selected(), true, nil
}
