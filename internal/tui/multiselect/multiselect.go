// Package multiselect adds checkbox selection to a bubbles list.
package multiselect

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectableItem extends list.Item with selection state.
type SelectableItem interface {
	list.Item
	// Key identifies the item across rebuilds.
	Key() string
	IsSelected() bool
	SetSelected(bool)
	// IsSelectable returns false for items without a checkbox, e.g. group headings.
	IsSelectable() bool
}

// Model wraps a bubbles/list.Model with multi-select capabilities.
type Model struct {
	List            list.Model
	selected        map[string]bool
	showCount       bool
	originalTitle   string
	checkboxChecked string
	checkboxEmpty   string
}

// New creates a new multi-select model wrapping the given list. Items that
// already report IsSelected start selected.
func New(l list.Model) Model {
	m := Model{
		List:            l,
		selected:        make(map[string]bool),
		showCount:       true,
		originalTitle:   l.Title,
		checkboxChecked: "[✓] ",
		checkboxEmpty:   "[ ] ",
	}
	for _, item := range l.Items() {
		if s, ok := item.(SelectableItem); ok && s.IsSelected() {
			m.selected[s.Key()] = true
		}
	}
	m.updateTitle()
	return m
}

// SetCheckboxStyle customizes the checkbox appearance.
func (m *Model) SetCheckboxStyle(checked, empty string) {
	m.checkboxChecked = checked
	m.checkboxEmpty = empty
}

// SetShowCount controls whether selection count appears in title.
func (m *Model) SetShowCount(show bool) {
	m.showCount = show
	m.updateTitle()
}

// Toggle toggles the selection state of the current item.
// Returns false if the item is not selectable.
func (m *Model) Toggle() bool {
	item, ok := m.List.SelectedItem().(SelectableItem)
	if !ok || !item.IsSelectable() {
		return false
	}

	key := item.Key()
	if m.selected[key] {
		delete(m.selected, key)
	} else {
		m.selected[key] = true
	}

	m.rebuildItems()
	m.updateTitle()
	return true
}

// ClearSelection removes all selections.
func (m *Model) ClearSelection() {
	m.selected = make(map[string]bool)
	m.rebuildItems()
	m.updateTitle()
}

// SelectedItems returns the selected items in list order.
func (m *Model) SelectedItems() []SelectableItem {
	var out []SelectableItem
	for _, item := range m.List.Items() {
		if s, ok := item.(SelectableItem); ok && m.selected[s.Key()] {
			out = append(out, s)
		}
	}
	return out
}

// SelectedCount returns the number of selected items.
func (m *Model) SelectedCount() int {
	return len(m.selected)
}

// rebuildItems pushes the selection state into the items. Items may be
// values, so the list gets a fresh slice.
func (m *Model) rebuildItems() {
	items := m.List.Items()
	newItems := make([]list.Item, len(items))
	for i, item := range items {
		if s, ok := item.(SelectableItem); ok {
			s.SetSelected(m.selected[s.Key()])
			newItems[i] = s
		} else {
			newItems[i] = item
		}
	}
	m.List.SetItems(newItems)
}

func (m *Model) updateTitle() {
	if m.showCount {
		m.List.Title = fmt.Sprintf("%s (%d selected)", m.originalTitle, m.SelectedCount())
	}
}

// SetTitle updates the base title (without count).
func (m *Model) SetTitle(title string) {
	m.originalTitle = title
	m.updateTitle()
}

// CheckboxPrefix returns the checkbox prefix for an item, for use by
// item delegates.
func (m *Model) CheckboxPrefix(item SelectableItem) string {
	if !item.IsSelectable() {
		return "    "
	}
	if item.IsSelected() {
		return m.checkboxChecked
	}
	return m.checkboxEmpty
}

// Update forwards messages to the list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View renders the list.
func (m Model) View() string {
	return m.List.View()
}
