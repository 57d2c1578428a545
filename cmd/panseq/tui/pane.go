package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/panseq-form/internal/transfer"
)

// flashDuration is how long moved rows stay highlighted. Purely cosmetic:
// the move itself has already happened when the flash starts.
const flashDuration = 400 * time.Millisecond

// TransferPane renders one transfer pair as two columns and translates key
// presses into pair operations.
type TransferPane struct {
	pair    *transfer.Pair
	title   string
	side    transfer.Side // side with the cursor
	cursor  [2]int        // per side
	focused bool
	height  int // rows available for items
	width   int

	flash    map[string]bool
	flashSeq int
}

// NewTransferPane creates a pane over p.
func NewTransferPane(p *transfer.Pair, title string) TransferPane {
	return TransferPane{
		pair:   p,
		title:  title,
		height: 12,
		flash:  make(map[string]bool),
	}
}

// Pair returns the underlying pair.
func (tp TransferPane) Pair() *transfer.Pair { return tp.pair }

// Side returns the side that has the cursor.
func (tp TransferPane) Side() transfer.Side { return tp.side }

// Cursor returns the cursor row of the given side.
func (tp TransferPane) Cursor(side transfer.Side) int { return tp.cursor[side] }

// SetFocus gives the pane keyboard focus on the given side, or removes it.
func (tp *TransferPane) SetFocus(side transfer.Side, focused bool) {
	tp.side = side
	tp.focused = focused
}

// SetSize sets the pane's width and the number of item rows per column.
func (tp *TransferPane) SetSize(width, height int) {
	tp.width = width
	if height < 1 {
		height = 1
	}
	tp.height = height
}

// Update handles key messages while the pane has focus, and clearFlashMsg.
func (tp TransferPane) Update(msg tea.Msg) (TransferPane, tea.Cmd) {
	switch msg := msg.(type) {
	case clearFlashMsg:
		if msg.pair == tp.pair.Name() && msg.seq == tp.flashSeq {
			tp.flash = make(map[string]bool)
		}
		return tp, nil
	case tea.KeyMsg:
		if !tp.focused {
			return tp, nil
		}
		return tp.handleKey(msg)
	}
	return tp, nil
}

func (tp TransferPane) handleKey(msg tea.KeyMsg) (TransferPane, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		tp.moveCursor(-1)
	case key.Matches(msg, keys.Down):
		tp.moveCursor(+1)
	case key.Matches(msg, keys.Toggle):
		if it, ok := tp.current(); ok {
			if _, err := tp.pair.Toggle(tp.side, it.ID); err != nil {
				return tp, notice(err)
			}
		}
	case key.Matches(msg, keys.SelectAll):
		tp.pair.SelectAll(tp.side)
	case key.Matches(msg, keys.SelectNone):
		tp.pair.ClearSelection(tp.side)
	case key.Matches(msg, keys.Add):
		return tp.moved(tp.pair.TransferSelected(), transfer.Target, nil)
	case key.Matches(msg, keys.AddAll):
		return tp.moved(tp.pair.TransferAllVisible(), transfer.Target, nil)
	case key.Matches(msg, keys.Remove):
		items, err := tp.pair.ReturnSelected()
		return tp.moved(items, transfer.Source, err)
	case key.Matches(msg, keys.RemoveAll):
		items, err := tp.pair.ReturnAll()
		return tp.moved(items, transfer.Source, err)
	}
	return tp, nil
}

// moved clamps cursors after a mutation, starts the flash for the moved
// rows, and reports the move along with any recovery error.
func (tp TransferPane) moved(items []transfer.Item, to transfer.Side, err error) (TransferPane, tea.Cmd) {
	tp.clampCursors()
	if err != nil {
		slog.Warn("transfer recovered", "pair", tp.pair.Name(), "err", err)
	}
	if len(items) == 0 {
		if err != nil {
			return tp, notice(err)
		}
		return tp, nil
	}
	ids := transfer.IDs(items)
	slog.Debug("moved", "pair", tp.pair.Name(), "to", to, "ids", ids)

	tp.flashSeq++
	tp.flash = make(map[string]bool, len(ids))
	for _, id := range ids {
		tp.flash[id] = true
	}
	name, seq := tp.pair.Name(), tp.flashSeq
	return tp, tea.Batch(
		func() tea.Msg { return MovedMsg{Pair: name, IDs: ids, Side: to, Err: err} },
		tea.Tick(flashDuration, func(time.Time) tea.Msg { return clearFlashMsg{pair: name, seq: seq} }),
	)
}

func notice(err error) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Err: err} }
}

func (tp *TransferPane) current() (transfer.Item, bool) {
	rows := tp.pair.Visible(tp.side)
	c := tp.cursor[tp.side]
	if c < 0 || c >= len(rows) {
		return transfer.Item{}, false
	}
	return rows[c], true
}

func (tp *TransferPane) moveCursor(dir int) {
	n := tp.pair.Len(tp.side)
	next := tp.cursor[tp.side] + dir
	if next >= 0 && next < n {
		tp.cursor[tp.side] = next
	}
}

func (tp *TransferPane) clampCursors() {
	for _, side := range []transfer.Side{transfer.Source, transfer.Target} {
		n := tp.pair.Len(side)
		if tp.cursor[side] >= n {
			tp.cursor[side] = n - 1
		}
		if tp.cursor[side] < 0 {
			tp.cursor[side] = 0
		}
	}
}

// View renders the source and target columns side by side.
func (tp TransferPane) View() string {
	colWidth := (tp.width - 6) / 2
	if colWidth < 20 {
		colWidth = 20
	}
	src := tp.column(transfer.Source, fmt.Sprintf("%s · available", tp.title), colWidth)
	tgt := tp.column(transfer.Target, "selected", colWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, src, " ", tgt)
}

func (tp TransferPane) column(side transfer.Side, heading string, width int) string {
	rows := tp.pair.Visible(side)
	active := tp.focused && tp.side == side

	var b strings.Builder
	title := fmt.Sprintf("%s (%d)", heading, len(rows))
	if active {
		b.WriteString(ListTitleStyle.Render(title))
	} else {
		b.WriteString(DimStyle.Render(title))
	}
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(DimStyle.Render("  (empty)"))
	}

	start, end := window(len(rows), tp.cursor[side], tp.height)
	if start > 0 {
		b.WriteString(DimStyle.Render("  ↑ more") + "\n")
	}
	for i := start; i < end; i++ {
		it := rows[i]
		cursor := "  "
		if active && i == tp.cursor[side] {
			cursor = "> "
		}
		mark := "○"
		if tp.pair.IsSelected(side, it.ID) {
			mark = SelectedStyle.Render("●")
		}
		text := it.Display()
		switch {
		case tp.flash[it.ID]:
			text = FlashStyle.Render(text)
		case active && i == tp.cursor[side]:
			text = lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(text)
		case !active:
			text = DimStyle.Render(text)
		}
		line := cursor + mark + " " + text
		if it.Label != "" && it.Label != it.ID {
			line += " " + DimStyle.Render(it.ID)
		}
		b.WriteString(line + "\n")
	}
	if end < len(rows) {
		b.WriteString(DimStyle.Render("  ↓ more") + "\n")
	}

	box := ListBoxStyle
	if active {
		box = FocusedListBoxStyle
	}
	return box.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// window returns the [start, end) rows to draw so the cursor stays visible.
func window(n, cursor, height int) (int, int) {
	if n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start > n-height {
		start = n - height
	}
	return start, start + height
}
