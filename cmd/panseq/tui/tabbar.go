package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TabBar renders the form tabs along the top of the TUI. The active tab's
// position is what decides the run mode at submit time.
type TabBar struct {
	tabs   []string // tab titles
	active int      // index of the selected tab
	width  int      // available horizontal space
}

// NewTabBar creates a tab bar with the given titles; the first is active.
func NewTabBar(titles []string) TabBar {
	tabs := make([]string, len(titles))
	copy(tabs, titles)
	return TabBar{tabs: tabs}
}

// SetWidth sets the available width for rendering.
func (t *TabBar) SetWidth(w int) {
	t.width = w
}

// Active returns the index of the active tab.
func (t TabBar) Active() int {
	return t.active
}

// ActiveTitle returns the title of the active tab.
func (t TabBar) ActiveTitle() string {
	if t.active >= 0 && t.active < len(t.tabs) {
		return t.tabs[t.active]
	}
	return ""
}

// Len returns the number of tabs.
func (t TabBar) Len() int {
	return len(t.tabs)
}

// SetActive sets the active tab by index. Out-of-range indexes are ignored.
func (t *TabBar) SetActive(i int) {
	if i >= 0 && i < len(t.tabs) {
		t.active = i
	}
}

// CycleNext advances to the next tab, wrapping around.
func (t *TabBar) CycleNext() {
	if len(t.tabs) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.tabs)
}

// CyclePrev moves to the previous tab, wrapping around.
func (t *TabBar) CyclePrev() {
	if len(t.tabs) == 0 {
		return
	}
	t.active = (t.active - 1 + len(t.tabs)) % len(t.tabs)
}

// Update handles tab switching keys. It emits TabSwitchMsg when the active
// tab changes.
func (t TabBar) Update(msg tea.Msg) (TabBar, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}
	prev := t.active
	switch {
	case key.Matches(km, keys.NextTab):
		t.CycleNext()
	case key.Matches(km, keys.PrevTab):
		t.CyclePrev()
	default:
		// Digits jump straight to a tab.
		if n, err := strconv.Atoi(km.String()); err == nil {
			t.SetActive(n - 1)
		}
	}
	if t.active == prev {
		return t, nil
	}
	idx := t.active
	return t, func() tea.Msg {
		return TabSwitchMsg{Index: idx}
	}
}

// View renders the tab bar as a single horizontal line.
func (t TabBar) View() string {
	parts := make([]string, 0, len(t.tabs))
	for i, name := range t.tabs {
		accent := accentForIndex(i)
		label := strconv.Itoa(i+1) + " " + name
		if i == t.active {
			style := lipgloss.NewStyle().
				Foreground(colorBase).
				Background(accent).
				Padding(0, 1).
				Bold(true)
			parts = append(parts, style.Render(label))
		} else {
			style := lipgloss.NewStyle().
				Foreground(accent).
				Background(colorSurface0).
				Padding(0, 1)
			parts = append(parts, style.Render(label))
		}
	}
	return TabBarStyle.Width(t.width).Render(strings.Join(parts, " "))
}
