package form

import (
	"errors"
	"fmt"
)

// Mode is the run mode token submitted with the job.
type Mode string

const (
	ModePan   Mode = "pan"
	ModeNovel Mode = "novel"
	ModeLoci  Mode = "loci"
)

// modeTable maps the active tab index to a run mode. The order is fixed.
var modeTable = [...]Mode{ModePan, ModeNovel, ModeLoci}

// ErrUnmappedTabIndex is returned when the active tab has no run mode.
var ErrUnmappedTabIndex = errors.New("tab index has no run mode")

// UnmappedTabIndexError carries the offending tab index.
type UnmappedTabIndexError struct {
	Index int
}

func (e *UnmappedTabIndexError) Error() string {
	return fmt.Sprintf("tab %d: %s (known: 0=%s, 1=%s, 2=%s)", e.Index, ErrUnmappedTabIndex, ModePan, ModeNovel, ModeLoci)
}

func (e *UnmappedTabIndexError) Unwrap() error { return ErrUnmappedTabIndex }

// ModeForTab maps a tab index to its run mode.
func ModeForTab(index int) (Mode, error) {
	if index < 0 || index >= len(modeTable) {
		return "", &UnmappedTabIndexError{Index: index}
	}
	return modeTable[index], nil
}

// Modes returns the run modes in tab order.
func Modes() []Mode {
	out := make([]Mode, len(modeTable))
	copy(out, modeTable[:])
	return out
}
