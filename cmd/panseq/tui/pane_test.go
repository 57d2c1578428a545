package tui

import (
	"errors"
	"testing"

	"github.com/ruminaider/panseq-form/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

func testPair(t *testing.T, ids ...string) *transfer.Pair {
	t.Helper()
	its := make([]transfer.Item, 0, len(ids))
	for _, id := range ids {
		its = append(its, transfer.Item{ID: id, Label: "Genome " + id})
	}
	p, err := transfer.NewPair("query", its)
	require.NoError(t, err)
	return p
}

func focusedPane(t *testing.T, ids ...string) TransferPane {
	t.Helper()
	tp := NewTransferPane(testPair(t, ids...), "Query genomes")
	tp.SetFocus(transfer.Source, true)
	return tp
}

func press(tp TransferPane, msgs ...tea.KeyMsg) (TransferPane, tea.Cmd) {
	var cmd tea.Cmd
	for _, m := range msgs {
		tp, cmd = tp.Update(m)
	}
	return tp, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
)

// movedMsg finds the MovedMsg in a batch without running the flash tick.
func movedMsg(t *testing.T, cmd tea.Cmd) MovedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		// The first command reports the move; the tick comes last.
		if m, ok := c().(MovedMsg); ok {
			return m
		}
		break
	}
	t.Fatal("no MovedMsg in batch")
	return MovedMsg{}
}

func TestPaneTransferSelected(t *testing.T) {
	tp := focusedPane(t, "A", "B", "C", "D")

	tp, _ = press(tp, keyDown, keySpace, keyDown, keyDown, keySpace)
	assert.True(t, tp.Pair().IsSelected(transfer.Source, "B"))
	assert.True(t, tp.Pair().IsSelected(transfer.Source, "D"))

	tp, cmd := press(tp, runeKey('>'))
	assert.Equal(t, []string{"B", "D"}, tp.Pair().TargetIDs())
	assert.Equal(t, []string{"A", "C"}, transfer.IDs(tp.Pair().Visible(transfer.Source)))

	msg := movedMsg(t, cmd)
	assert.Equal(t, "query", msg.Pair)
	assert.Equal(t, []string{"B", "D"}, msg.IDs)
	assert.Equal(t, transfer.Target, msg.Side)

	// Cursor was on row 3, now only two rows remain.
	assert.Equal(t, 1, tp.Cursor(transfer.Source))
}

func TestPaneAddAllAndRemoveAll(t *testing.T) {
	tp := focusedPane(t, "A", "B", "C")

	tp, _ = press(tp, runeKey('L'))
	assert.Equal(t, []string{"A", "B", "C"}, tp.Pair().TargetIDs())

	tp, _ = press(tp, runeKey('H'))
	assert.Empty(t, tp.Pair().TargetIDs())
	assert.Equal(t, []string{"A", "B", "C"}, transfer.IDs(tp.Pair().Visible(transfer.Source)))
}

func TestPaneReturnSelectedFromTarget(t *testing.T) {
	tp := focusedPane(t, "A", "B", "C")
	tp, _ = press(tp, runeKey('a'), runeKey('>'))
	require.Equal(t, []string{"A", "B", "C"}, tp.Pair().TargetIDs())

	tp.SetFocus(transfer.Target, true)
	tp, _ = press(tp, keyDown, keySpace)
	assert.True(t, tp.Pair().IsSelected(transfer.Target, "B"))

	tp, cmd := press(tp, runeKey('<'))
	assert.Equal(t, []string{"A", "C"}, tp.Pair().TargetIDs())
	assert.Equal(t, []string{"B"}, transfer.IDs(tp.Pair().Visible(transfer.Source)))
	assert.Equal(t, transfer.Source, movedMsg(t, cmd).Side)
}

func TestPaneSelectNone(t *testing.T) {
	tp := focusedPane(t, "A", "B")
	tp, _ = press(tp, runeKey('a'))
	assert.Len(t, tp.Pair().SelectedItems(transfer.Source), 2)
	tp, _ = press(tp, runeKey('n'))
	assert.Empty(t, tp.Pair().SelectedItems(transfer.Source))
}

func TestPaneCursorBounds(t *testing.T) {
	tp := focusedPane(t, "A", "B")
	tp, _ = press(tp, keyUp)
	assert.Equal(t, 0, tp.Cursor(transfer.Source))
	tp, _ = press(tp, keyDown, keyDown, keyDown)
	assert.Equal(t, 1, tp.Cursor(transfer.Source))
}

func TestPaneIgnoresKeysWhenUnfocused(t *testing.T) {
	tp := NewTransferPane(testPair(t, "A"), "Query")
	tp, cmd := press(tp, runeKey('L'))
	assert.Nil(t, cmd)
	assert.Empty(t, tp.Pair().TargetIDs())
}

func TestPaneNothingToMove(t *testing.T) {
	tp := focusedPane(t, "A")
	_, cmd := press(tp, runeKey('>'))
	assert.Nil(t, cmd)
}

func TestPaneRecoveredReturnReportsNotice(t *testing.T) {
	tp := focusedPane(t, "A")
	tp.Pair().Preload([]string{"ghost"})

	tp, cmd := press(tp, runeKey('H'))
	require.NotNil(t, cmd)
	moved := movedMsg(t, cmd)
	assert.Equal(t, transfer.Source, moved.Side)
	assert.True(t, errors.Is(moved.Err, transfer.ErrInvalidOperation))
	assert.Equal(t, []string{"A", "ghost"}, transfer.IDs(tp.Pair().Visible(transfer.Source)))
}

func TestPaneFlash(t *testing.T) {
	tp := focusedPane(t, "A", "B")
	tp, _ = press(tp, keySpace, runeKey('>'))
	assert.True(t, tp.flash["A"])
	seq := tp.flashSeq

	tp, _ = tp.Update(clearFlashMsg{pair: "query", seq: seq - 1})
	assert.True(t, tp.flash["A"], "stale clear keeps the flash")

	tp, _ = tp.Update(clearFlashMsg{pair: "other", seq: seq})
	assert.True(t, tp.flash["A"])

	tp, _ = tp.Update(clearFlashMsg{pair: "query", seq: seq})
	assert.Empty(t, tp.flash)
}

func TestPaneView(t *testing.T) {
	tp := focusedPane(t, "A", "B")
	tp.SetSize(100, 10)
	tp, _ = press(tp, keySpace, runeKey('>'))

	view := tp.View()
	assert.Contains(t, view, "Query genomes · available (1)")
	assert.Contains(t, view, "selected (1)")
	assert.Contains(t, view, "Genome B")
	assert.Contains(t, view, "Genome A")
}

func TestWindow(t *testing.T) {
	s, e := window(5, 0, 10)
	assert.Equal(t, [2]int{0, 5}, [2]int{s, e})

	s, e = window(20, 0, 5)
	assert.Equal(t, [2]int{0, 5}, [2]int{s, e})

	s, e = window(20, 10, 5)
	assert.Equal(t, [2]int{8, 13}, [2]int{s, e})

	s, e = window(20, 19, 5)
	assert.Equal(t, [2]int{15, 20}, [2]int{s, e})
}
