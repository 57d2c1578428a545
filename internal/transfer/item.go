// Package transfer implements the dual-list transfer selector: a source
// list whose items are hidden rather than removed when moved, a target list
// that records where each item came from, and per-list selection state.
package transfer

// NoIndex marks an item that has no recorded slot in the source list.
const NoIndex = -1

// Item is one selectable entry. ID is what gets submitted; Label is what
// gets shown. OriginalIndex is the item's slot in the source arena.
type Item struct {
	ID            string
	Label         string
	OriginalIndex int
}

// Display returns the label, falling back to the id.
func (it Item) Display() string {
	if it.Label != "" {
		return it.Label
	}
	return it.ID
}

// Side names one of the two lists of a pair.
type Side int

const (
	Source Side = iota
	Target
)

// String returns the display name for a side.
func (s Side) String() string {
	switch s {
	case Source:
		return "source"
	case Target:
		return "target"
	default:
		return "unknown"
	}
}

// IDs projects items to their ids, preserving order.
func IDs(items []Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
