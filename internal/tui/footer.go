package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// clearActiveCmdMsg clears the active command highlight in the footer.
type clearActiveCmdMsg struct{}

// shortcutEntry pairs a trigger key with the display label for footer highlighting.
type shortcutEntry struct {
	Key   string // trigger key matched against activeCmd
	Label string
}

// highlightCmd returns a 500ms tick that clears the footer highlight.
// Set activeCmd on the model before returning it:
//
//	m.activeCmd = "s"
//	return m, highlightCmd()
func highlightCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return clearActiveCmdMsg{}
	})
}

// renderFooterBar renders the shortcut labels. The shortcut matching
// activeCmd is highlighted, the others are dim.
func renderFooterBar(shortcuts []shortcutEntry, activeCmd string) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	parts := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		if activeCmd != "" && sc.Key == activeCmd {
			parts[i] = StyleHighlight.Render("[ " + sc.Label + " ]")
		} else {
			parts[i] = dimStyle.Render(sc.Label)
		}
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, dimStyle.Render(" • ")))
}

// renderWithFooter frames a component view and appends the footer bar.
func renderWithFooter(componentView string, shortcuts []shortcutEntry, activeCmd string) string {
	footer := renderFooterBar(shortcuts, activeCmd)
	return StyleBorder.Render(componentView + "\n" + footer)
}
