package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with list counts, the run mode the
// active tab maps to, the last notice, and keyboard shortcuts.
type StatusBar struct {
	list     string
	selected int
	total    int
	mode     string
	notice   string
	width    int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the counts for the focused list and the run mode.
func (s *StatusBar) Update(list string, selected, total int, mode string) {
	s.list = list
	s.selected = selected
	s.total = total
	s.mode = mode
}

// SetNotice shows msg until the next notice. An empty msg clears it.
func (s *StatusBar) SetNotice(msg string) {
	s.notice = msg
}

// Notice returns the current notice.
func (s StatusBar) Notice() string {
	return s.notice
}

// View renders the status bar.
func (s StatusBar) View() string {
	mode := s.mode
	if mode == "" {
		mode = "?"
	}
	leftPart := fmt.Sprintf("%s: %d/%d in target · mode %s", s.list, s.selected, s.total, mode)
	if s.notice != "" {
		leftPart += " · " + StatusErrorStyle.Render(s.notice)
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render(">/<") + ": move",
		StatusBarKeyStyle.Render("L/H") + ": all",
		StatusBarKeyStyle.Render("Tab") + ": list",
		StatusBarKeyStyle.Render("[/]") + ": tab",
		StatusBarKeyStyle.Render("Ctrl+S") + ": submit",
	}
	rightPart := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(leftPart)
	rightWidth := ansi.StringWidth(rightPart)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart

	return StatusBarStyle.Width(s.width).Render(content)
}
