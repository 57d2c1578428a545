package transfer

import (
	"fmt"
	"sync"
)

// Pair is a source/target list pair. The source is a fixed arena: moving an
// item to the target only hides its slot, so returning it restores the exact
// position it was taken from. All methods are safe for concurrent use and
// serialized per pair.
type Pair struct {
	mu     sync.Mutex
	name   string
	source []Item         // arena; never shrinks
	hidden []bool         // parallel to source
	slot   map[string]int // id -> arena index
	target []Item
	sel    [2]selection // indexed by Side
}

// NewPair builds a pair whose source holds items in the given order and
// whose target is empty. OriginalIndex is assigned from the position in
// items; ids must be non-empty and unique.
func NewPair(name string, items []Item) (*Pair, error) {
	p := &Pair{
		name:   name,
		source: make([]Item, 0, len(items)),
		hidden: make([]bool, 0, len(items)),
		slot:   make(map[string]int, len(items)),
		sel:    [2]selection{make(selection), make(selection)},
	}
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("list %s: item %q has an empty id", name, it.Label)
		}
		if _, dup := p.slot[it.ID]; dup {
			return nil, fmt.Errorf("list %s: %q: %w", name, it.ID, ErrDuplicateItem)
		}
		it.OriginalIndex = len(p.source)
		p.slot[it.ID] = it.OriginalIndex
		p.source = append(p.source, it)
		p.hidden = append(p.hidden, false)
	}
	return p, nil
}

// Name returns the pair's registry name.
func (p *Pair) Name() string { return p.name }

// Visible returns the items currently shown in the given list, in order.
func (p *Pair) Visible(side Side) []Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible(side)
}

// TargetIDs returns the ids of the target list in order.
func (p *Pair) TargetIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return IDs(p.target)
}

// Has reports whether id is visible in the given list.
func (p *Pair) Has(side Side, id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visibleIn(side, id)
}

// Len returns the number of visible items in the given list.
func (p *Pair) Len(side Side) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if side == Target {
		return len(p.target)
	}
	n := 0
	for _, h := range p.hidden {
		if !h {
			n++
		}
	}
	return n
}

// TransferSelected moves every item selected in the source to the end of
// the target, in source order.
func (p *Pair) TransferSelected() []Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moveToTarget(func(it Item) bool { return p.sel[Source].has(it.ID) })
}

// TransferAllVisible moves every visible source item to the target,
// regardless of selection.
func (p *Pair) TransferAllVisible() []Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moveToTarget(func(Item) bool { return true })
}

// ReturnSelected removes every item selected in the target and re-shows it
// in the source at its recorded slot. Items without a usable slot are
// appended to the source and reported with an *InvalidOperationError; the
// pair stays consistent either way.
func (p *Pair) ReturnSelected() ([]Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moveToSource(func(it Item) bool { return p.sel[Target].has(it.ID) })
}

// ReturnAll empties the target and re-shows every hidden source item,
// restoring the original source order.
func (p *Pair) ReturnAll() ([]Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	moved, err := p.moveToSource(func(Item) bool { return true })
	for i := range p.hidden {
		p.hidden[i] = false
	}
	return moved, err
}

// Preload moves the named items into the target, in the order given, as if
// each had been transferred. Ids not present in the source are still added
// to the target, without a recorded slot; ids already in the target are
// skipped.
func (p *Pair) Preload(ids []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range ids {
		if p.inTarget(id) {
			continue
		}
		i, ok := p.slot[id]
		if !ok {
			p.target = append(p.target, Item{ID: id, OriginalIndex: NoIndex})
			continue
		}
		p.hidden[i] = true
		p.sel[Source].remove(id)
		p.target = append(p.target, p.source[i])
	}
}

func (p *Pair) moveToTarget(want func(Item) bool) []Item {
	var moved []Item
	for i, it := range p.source {
		if p.hidden[i] || !want(it) {
			continue
		}
		p.sel[Source].remove(it.ID)
		p.hidden[i] = true
		it.OriginalIndex = i
		p.target = append(p.target, it)
		moved = append(moved, it)
	}
	return moved
}

func (p *Pair) moveToSource(want func(Item) bool) ([]Item, error) {
	var (
		moved   []Item
		kept    = make([]Item, 0, len(p.target))
		invalid []string
	)
	for _, it := range p.target {
		if !want(it) {
			kept = append(kept, it)
			continue
		}
		p.sel[Target].remove(it.ID)
		if !p.restore(it) {
			invalid = append(invalid, it.ID)
		}
		moved = append(moved, it)
	}
	p.target = kept
	if len(invalid) > 0 {
		return moved, &InvalidOperationError{Pair: p.name, IDs: invalid}
	}
	return moved, nil
}

// restore re-shows it in the source. It reports false when the recorded
// slot was missing or stale and the item had to be recovered another way.
func (p *Pair) restore(it Item) bool {
	i := it.OriginalIndex
	if i >= 0 && i < len(p.source) && p.source[i].ID == it.ID {
		p.hidden[i] = false
		return true
	}
	if j, ok := p.slot[it.ID]; ok {
		p.hidden[j] = false
		return false
	}
	it.OriginalIndex = len(p.source)
	p.slot[it.ID] = it.OriginalIndex
	p.source = append(p.source, it)
	p.hidden = append(p.hidden, false)
	return false
}

func (p *Pair) visible(side Side) []Item {
	if side == Target {
		out := make([]Item, len(p.target))
		copy(out, p.target)
		return out
	}
	var out []Item
	for i, it := range p.source {
		if !p.hidden[i] {
			out = append(out, it)
		}
	}
	return out
}

func (p *Pair) visibleIn(side Side, id string) bool {
	if side == Target {
		return p.inTarget(id)
	}
	i, ok := p.slot[id]
	return ok && !p.hidden[i]
}

func (p *Pair) inTarget(id string) bool {
	for _, it := range p.target {
		if it.ID == id {
			return true
		}
	}
	return false
}
