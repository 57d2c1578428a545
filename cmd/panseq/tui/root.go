package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/panseq-form/internal/commands"
	"github.com/ruminaider/panseq-form/internal/form"
	"github.com/ruminaider/panseq-form/internal/transfer"
)

// tabView is one form tab: the panes of the lists it shows.
type tabView struct {
	panes []TransferPane
}

// Model is the root bubbletea model of the submission form.
type Model struct {
	session *commands.Session

	tabs      []tabView
	tabBar    TabBar
	statusBar StatusBar

	focus         int // pane*2 + side within the active tab
	width, height int
	quitting      bool

	// Result is set when the form was submitted, read after the TUI exits.
	Result *form.Submission
}

// NewModel builds the form screen for a session. Lists shared by several
// tabs are the same pair, so moves on one tab show on the others.
func NewModel(s *commands.Session) Model {
	m := Model{
		session:   s,
		statusBar: NewStatusBar(),
	}
	titles := make([]string, 0, len(s.Tabs))
	for _, t := range s.Tabs {
		var tv tabView
		for _, name := range t.Lists {
			p, ok := s.Registry.Pair(name)
			if !ok {
				continue
			}
			tv.panes = append(tv.panes, NewTransferPane(p, s.Titles[name]))
		}
		m.tabs = append(m.tabs, tv)
		titles = append(titles, t.Title)
	}
	m.tabBar = NewTabBar(titles)
	m.applyFocus()
	m.refreshStatus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TabSwitchMsg:
		slog.Debug("tab switched", "index", msg.Index, "title", m.tabBar.ActiveTitle())
		return m, nil

	case MovedMsg:
		if msg.Err != nil {
			m.statusBar.SetNotice(msg.Err.Error())
		} else {
			m.statusBar.SetNotice("")
		}
		m.refreshStatus()
		return m, nil

	case NoticeMsg:
		m.statusBar.SetNotice(msg.Err.Error())
		return m, nil

	case SubmitRequestMsg:
		return m.submit()

	case clearFlashMsg:
		for ti := range m.tabs {
			for pi := range m.tabs[ti].panes {
				m.tabs[ti].panes[pi], _ = m.tabs[ti].panes[pi].Update(msg)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Submit):
		return m, func() tea.Msg { return SubmitRequestMsg{} }
	case key.Matches(msg, keys.NextList):
		m.cycleFocus(+1)
		return m, nil
	case key.Matches(msg, keys.PrevList):
		m.cycleFocus(-1)
		return m, nil
	}

	prev := m.tabBar.Active()
	var cmd tea.Cmd
	m.tabBar, cmd = m.tabBar.Update(msg)
	if m.tabBar.Active() != prev {
		m.blurAll()
		m.focus = 0
		// Panes of shared pairs may be stale after moves on another tab.
		if tv := m.activeTab(); tv != nil {
			for pi := range tv.panes {
				tv.panes[pi].clampCursors()
			}
		}
		m.applyFocus()
		m.statusBar.SetNotice("")
		m.refreshStatus()
		return m, cmd
	}

	tv := m.activeTab()
	if tv == nil || len(tv.panes) == 0 {
		return m, nil
	}
	pi := m.focus / 2
	tv.panes[pi], cmd = tv.panes[pi].Update(msg)
	m.refreshStatus()
	return m, cmd
}

// submit assembles the request for the active tab. On error the form stays
// open and the error is shown.
func (m Model) submit() (tea.Model, tea.Cmd) {
	sub, err := m.session.Submit(m.tabBar.Active())
	if err != nil {
		m.statusBar.SetNotice(err.Error())
		return m, nil
	}
	m.Result = &sub
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) activeTab() *tabView {
	i := m.tabBar.Active()
	if i < 0 || i >= len(m.tabs) {
		return nil
	}
	return &m.tabs[i]
}

func (m *Model) cycleFocus(dir int) {
	tv := m.activeTab()
	if tv == nil || len(tv.panes) == 0 {
		return
	}
	n := len(tv.panes) * 2
	m.focus = (m.focus + dir + n) % n
	m.applyFocus()
	m.refreshStatus()
}

func (m *Model) blurAll() {
	for ti := range m.tabs {
		for pi := range m.tabs[ti].panes {
			p := &m.tabs[ti].panes[pi]
			p.SetFocus(p.Side(), false)
		}
	}
}

func (m *Model) applyFocus() {
	tv := m.activeTab()
	if tv == nil {
		return
	}
	for pi := range tv.panes {
		focused := pi == m.focus/2
		side := transfer.Side(m.focus % 2)
		if !focused {
			side = tv.panes[pi].Side()
		}
		tv.panes[pi].SetFocus(side, focused)
	}
}

func (m *Model) refreshStatus() {
	mode := ""
	if md, err := form.ModeForTab(m.tabBar.Active()); err == nil {
		mode = string(md)
	}
	tv := m.activeTab()
	if tv == nil || len(tv.panes) == 0 {
		m.statusBar.Update("no lists", 0, 0, mode)
		return
	}
	p := tv.panes[m.focus/2].Pair()
	target := p.Len(transfer.Target)
	m.statusBar.Update(m.session.Titles[p.Name()], target, target+p.Len(transfer.Source), mode)
}

// layout distributes the terminal size over the tab bar, panes and status
// bar.
func (m *Model) layout() {
	m.tabBar.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	for ti := range m.tabs {
		n := len(m.tabs[ti].panes)
		if n == 0 {
			continue
		}
		// Tab bar, status bar, and per pane a title row plus two border rows.
		rows := (m.height-2)/n - 3
		if rows > 1 {
			rows-- // scroll hint
		}
		for pi := range m.tabs[ti].panes {
			m.tabs[ti].panes[pi].SetSize(m.width, rows)
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var sections []string
	sections = append(sections, m.tabBar.View())

	if tv := m.activeTab(); tv == nil || len(tv.panes) == 0 {
		sections = append(sections, DimStyle.Render("  "+m.tabBar.ActiveTitle()+" has no lists."))
	} else {
		for _, p := range tv.panes {
			sections = append(sections, p.View())
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	// Keep the status bar on the last line.
	if gap := m.height - lipgloss.Height(body) - 1; gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + m.statusBar.View()
}
