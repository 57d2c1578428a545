package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorTeal     = lipgloss.Color(flavor.Teal().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// tabAccents cycles per tab position.
var tabAccents = []lipgloss.Color{colorBlue, colorMauve, colorTeal, colorPeach}

func accentForIndex(i int) lipgloss.Color {
	return tabAccents[i%len(tabAccents)]
}

// Tab bar styles.
var (
	// TabBarStyle is the background strip for the tab bar row.
	TabBarStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Padding(0, 1)
)

// List styles.
var (
	// ListTitleStyle is used for the heading above each list column.
	ListTitleStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// SelectedStyle marks items in the selection set.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// FlashStyle briefly marks rows that were just moved.
	FlashStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorYellow)

	// DimStyle is used for unfocused lists and secondary text.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// ListBoxStyle wraps one list column.
	ListBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// FocusedListBoxStyle wraps the list column with keyboard focus.
	FocusedListBoxStyle = ListBoxStyle.
				BorderForeground(colorBlue)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// StatusErrorStyle renders error notices in the status bar.
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorSurface0).
				Bold(true)
)
