package transfer

import "fmt"

// selection is the set of selected ids for one list of one pair.
type selection map[string]struct{}

func (s selection) add(id string)    { s[id] = struct{}{} }
func (s selection) remove(id string) { delete(s, id) }
func (s selection) clear()           { clear(s) }

func (s selection) has(id string) bool {
	_, ok := s[id]
	return ok
}

// Select marks id as selected in the given list. Selecting an already
// selected id is a no-op. The id must be visible in that list.
func (p *Pair) Select(side Side, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.visibleIn(side, id) {
		return fmt.Errorf("selecting %q in %s %s: %w", id, p.name, side, ErrUnknownItem)
	}
	p.sel[side].add(id)
	return nil
}

// Deselect clears the selection mark on id. Deselecting an id that is not
// selected is a no-op.
func (p *Pair) Deselect(side Side, id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sel[side].remove(id)
}

// Toggle flips the selection mark on id and reports the new state.
func (p *Pair) Toggle(side Side, id string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.visibleIn(side, id) {
		return false, fmt.Errorf("toggling %q in %s %s: %w", id, p.name, side, ErrUnknownItem)
	}
	if p.sel[side].has(id) {
		p.sel[side].remove(id)
		return false, nil
	}
	p.sel[side].add(id)
	return true, nil
}

// IsSelected reports whether id is selected in the given list.
func (p *Pair) IsSelected(side Side, id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sel[side].has(id)
}

// SelectAll selects every visible item of the given list.
func (p *Pair) SelectAll(side Side) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, it := range p.visible(side) {
		p.sel[side].add(it.ID)
	}
}

// ClearSelection deselects everything in the given list.
func (p *Pair) ClearSelection(side Side) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sel[side].clear()
}

// SelectedItems returns the selected items of the given list in document
// order, not selection order.
func (p *Pair) SelectedItems(side Side) []Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selectedLocked(side)
}

func (p *Pair) selectedLocked(side Side) []Item {
	var out []Item
	for _, it := range p.visible(side) {
		if p.sel[side].has(it.ID) {
			out = append(out, it)
		}
	}
	return out
}
