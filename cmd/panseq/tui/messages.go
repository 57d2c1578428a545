package tui

import "github.com/ruminaider/panseq-form/internal/transfer"

// TabSwitchMsg is sent when the user switches to a different form tab.
type TabSwitchMsg struct{ Index int }

// MovedMsg is sent after a transfer or return so moved rows can be flashed.
// Err is set when the move succeeded only by recovering misplaced items.
type MovedMsg struct {
	Pair string
	IDs  []string
	Side transfer.Side // side the items ended up on
	Err  error
}

// clearFlashMsg ends the flash started by the MovedMsg with the same seq.
type clearFlashMsg struct {
	pair string
	seq  int
}

// NoticeMsg reports a recoverable problem to the status bar.
type NoticeMsg struct{ Err error }

// SubmitRequestMsg is sent when the user presses Ctrl+S.
type SubmitRequestMsg struct{}
