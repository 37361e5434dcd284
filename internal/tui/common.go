package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color usage of the text output
var (
	// ColorGreen for wines ready to drink and fresh bottles
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for vintages, regions and other metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for closing drink windows and highlights
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorRed for wines past their peak and depleted stock
	ColorRed = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

	// ColorBlue for wines that are still too young
	ColorBlue = lipgloss.AdaptiveColor{Light: "#005FD7", Dark: "#5FAFFF"}
)

// Reusable styles
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for the item under the cursor
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StyleMeta = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	StyleReady    = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleClosing  = lipgloss.NewStyle().Foreground(ColorYellow)
	StylePastPeak = lipgloss.NewStyle().Foreground(ColorRed)
	StyleTooYoung = lipgloss.NewStyle().Foreground(ColorBlue)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleBorder frames the browser and the picker
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)
